package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type generalOptions struct {
	Verbose bool   `yaml:"verbose" long:"verbose" description:"Verbose output"`
	File    string `yaml:"file"    long:"file"`
}

type alphabetOptions struct {
	Preset string `yaml:"preset" long:"preset"`
	Pad    string `yaml:"pad"    long:"pad"`
}

type serveCommand struct {
	Listen string `yaml:"listen" long:"listen"`
}

func (s *serveCommand) Execute(args []string) error {
	return nil
}

func newTestParser(t *testing.T) (*flags.Parser, *generalOptions, *alphabetOptions, *serveCommand) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)

	general := &generalOptions{}
	_, err := parser.AddGroup("General", "General options", general)
	require.NoErrorf(t, err, "Could not add general group")

	alphabet := &alphabetOptions{}
	_, err = parser.AddGroup("Alphabet", "Alphabet options", alphabet)
	require.NoErrorf(t, err, "Could not add alphabet group")

	serve := &serveCommand{}
	_, err = parser.AddCommand("serve", "Serve", "Serve the API", serve)
	require.NoErrorf(t, err, "Could not add serve command")

	return parser, general, alphabet, serve
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser, _, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, alphabet, serve := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, general.Verbose, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", general.File, "Invalid reading of string value")
	require.Equal(t, "web64", alphabet.Preset)
	require.Equal(t, "~", alphabet.Pad)
	require.Equal(t, "127.0.0.1:9000", serve.Listen)
}

func Test_MultipleSegments(t *testing.T) {
	config := "alphabet:\n  preset: url64\n---\nalphabet:\n  preset: tilde64\n"

	parser, _, alphabet, _ := newTestParser(t)
	err := NewYamlParser(parser).Parse(strings.NewReader(config))
	require.NoError(t, err)
	require.Equal(t, "tilde64", alphabet.Preset, "Later segments should win")
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}
