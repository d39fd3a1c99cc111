package logging

import (
	"fmt"
	"github.com/bokysan/radixace/internal/args"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"net"
	"net/http"
	"strings"
	"time"
)

// JSONLogFormatter formats the HTTP access log for Logrus JSON output
type JSONLogFormatter struct {
	ServerAddress net.Addr
}

// JSONLogEntry prepares the Logrus context
type JSONLogEntry struct {
	request       *http.Request
	serverAddress net.Addr
}

// NewLogEntry creates a new entry for the Logrus log
func (j *JSONLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &JSONLogEntry{
		request:       r,
		serverAddress: j.ServerAddress,
	}
}

func getHeader(headers http.Header, name string) string {
	if name == "" {
		return ""
	}
	return headers.Get(name)
}

func (j *JSONLogEntry) fields() logrus.Fields {
	r := j.request
	server := ""
	if j.serverAddress != nil {
		server = j.serverAddress.String()
	}
	return logrus.Fields{
		"hostname":          r.Host,
		"remote_addr":       r.RemoteAddr,
		"x-forwarded-for":   getHeader(r.Header, "X-Forwarded-For"),
		"request":           fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
		"request_id":        middleware.GetReqID(r.Context()),
		"request_method":    r.Method,
		"request_uri":       r.RequestURI,
		"query_string":      r.URL.RawQuery,
		"server_protocol":   r.Proto,
		"server_address":    server,
		"received_referrer": r.Referer(),
		"received_length":   r.ContentLength,
		"received_type":     getHeader(r.Header, "Content-Type"),
		"protocol":          "HTTP",
		"app":               "radixace",
		"type":              "access",
		"user_agent":        r.UserAgent(),
	}
}

// Write outputs the log entry into the log
func (j *JSONLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	fields := j.fields()
	fields["request_time"] = elapsed.Seconds()
	fields["request_completion"] = "OK"
	fields["status"] = status
	fields["sent_bytes"] = bytes
	fields["sent_content_type"] = getHeader(header, "Content-Type")
	fields["extra"] = extra

	logrus.WithFields(fields).Debug()
}

// Panic outputs the log entry into the log
func (j *JSONLogEntry) Panic(v interface{}, stack []byte) {
	fields := j.fields()
	fields["error"] = v
	fields["stack"] = string(stack)

	logrus.WithFields(fields).Errorf("%+v", v)
}

// RequestLogger returns the chi middleware which writes HTTP requests into the log, in the format
// selected by the general options
func RequestLogger(address net.Addr) func(next http.Handler) http.Handler {
	if args.General.LogFormat == "json" {
		return middleware.RequestLogger(
			&JSONLogFormatter{
				ServerAddress: address,
			},
		)
	}

	color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
	return middleware.RequestLogger(
		&middleware.DefaultLogFormatter{
			Logger:  &ChiLogWriter{},
			NoColor: color == "no" || color == "false" || color == "0",
		},
	)
}
