package server

import (
	"encoding/json"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/bokysan/radixace/internal/util/enc"
	"github.com/bokysan/radixace/internal/version"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"math/big"
	"net/http"
	"strconv"
	"strings"
)

// MaxBodySize limits the payload of the armor endpoints
const MaxBodySize = 1 << 20

type alphabetResponse struct {
	Name       string `json:"name"`
	Radix      int    `json:"radix"`
	Symbols    string `json:"symbols"`
	Pad        string `json:"pad,omitempty"`
	Zero       string `json:"zero"`
	ChunkWidth int    `json:"chunkWidth"`
}

type numberResponse struct {
	Value   string `json:"value"`
	Base    int    `json:"base"`
	Encoded string `json:"encoded"`
}

type textResponse struct {
	Text    string `json:"text"`
	Encoded string `json:"encoded"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func writeJson(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

// writeError reports codec errors as bad requests and everything else with the given status
func writeError(w http.ResponseWriter, status int, err error) {
	res := errorResponse{
		Error: err.Error(),
	}
	var e *radix.Error
	if errors.As(err, &e) {
		status = http.StatusBadRequest
		res.Kind = e.Kind.String()
		if e.Pos >= 0 {
			pos := e.Pos
			res.Position = &pos
		}
	}
	writeJson(w, status, res)
}

// base reads the optional `base` query parameter, defaulting to the radix of the alphabet
func (ws *HttpServer) base(r *http.Request) (int, error) {
	b := r.URL.Query().Get("base")
	if b == "" {
		return ws.alphabet.Radix(), nil
	}
	base, err := strconv.Atoi(b)
	if err != nil {
		return 0, &radix.Error{Kind: radix.KindInvalidBase, Pos: -1, Msg: "base is not a number: " + b}
	}
	return base, nil
}

func (ws *HttpServer) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	a := ws.alphabet
	res := alphabetResponse{
		Name:       a.Name(),
		Radix:      a.Radix(),
		Symbols:    a.Symbols(),
		Zero:       a.Zero().String(),
		ChunkWidth: a.ChunkWidth(),
	}
	if pad, ok := a.Pad(); ok {
		res.Pad = string(pad)
	}
	writeJson(w, http.StatusOK, res)
}

func (ws *HttpServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, version.Details())
}

func (ws *HttpServer) handleNumberEncode(w http.ResponseWriter, r *http.Request) {
	base, err := ws.base(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v, err := radix.ParseNumber(chi.URLParam(r, "value"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	encoded, err := ws.alphabet.EncodeNumberBase(v, base)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJson(w, http.StatusOK, numberResponse{
		Value:   v.String(),
		Base:    base,
		Encoded: encoded,
	})
}

func (ws *HttpServer) handleNumberDecode(w http.ResponseWriter, r *http.Request) {
	base, err := ws.base(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	symbols := chi.URLParam(r, "symbols")
	var v *big.Int
	if v, err = ws.alphabet.DecodeNumberBase(symbols, base); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJson(w, http.StatusOK, numberResponse{
		Value:   v.String(),
		Base:    base,
		Encoded: symbols,
	})
}

func (ws *HttpServer) handleTextEncode(w http.ResponseWriter, r *http.Request) {
	if ws.text == nil {
		writeError(w, http.StatusNotImplemented, errors.Errorf("Alphabet %v has no pad symbol", ws.alphabet))
		return
	}
	text := r.URL.Query().Get("q")
	writeJson(w, http.StatusOK, textResponse{
		Text:    text,
		Encoded: ws.text.EncodeString(text),
	})
}

func (ws *HttpServer) handleTextDecode(w http.ResponseWriter, r *http.Request) {
	if ws.text == nil {
		writeError(w, http.StatusNotImplemented, errors.Errorf("Alphabet %v has no pad symbol", ws.alphabet))
		return
	}
	stream := chi.URLParam(r, "stream")
	text, err := ws.text.DecodeString(stream)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJson(w, http.StatusOK, textResponse{
		Text:    text,
		Encoded: stream,
	})
}

func (ws *HttpServer) readArmor(w http.ResponseWriter, r *http.Request) (enc.Encoder, []byte, bool) {
	encoder, err := enc.Find(chi.URLParam(r, "codec"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, nil, false
	}
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, errors.WithStack(err))
		return nil, nil, false
	}
	return encoder, body, true
}

func (ws *HttpServer) handleArmorEncode(w http.ResponseWriter, r *http.Request) {
	encoder, body, ok := ws.readArmor(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(encoder.Encode(body))); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

func (ws *HttpServer) handleArmorDecode(w http.ResponseWriter, r *http.Request) {
	encoder, body, ok := ws.readArmor(w, r)
	if !ok {
		return
	}
	data, err := encoder.Decode(strings.TrimSpace(string(body)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}
