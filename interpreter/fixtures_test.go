package interp_test

import (
	"bytes"
	_ "embed"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	interp "github.com/havrydotdev/bang/interpreter"
	"github.com/havrydotdev/bang/parser"
	"github.com/havrydotdev/bang/scanner"
)

//go:embed testdata/fixtures.yaml
var fixturesYAML []byte

type fixture struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Output []string `yaml:"output"`
	Error  string   `yaml:"error"`
}

func TestFixtures(t *testing.T) {
	var fixtures []fixture
	if err := yaml.Unmarshal(fixturesYAML, &fixtures); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			var out bytes.Buffer
			err := runSource(&out, fx.Source)

			if fx.Error != "" {
				if err == nil {
					t.Fatalf("expected an error containing %q, got none", fx.Error)
				}

				if !strings.Contains(err.Error(), fx.Error) {
					t.Fatalf("expected an error containing %q, got %q", fx.Error, err.Error())
				}

				if out.Len() != 0 {
					t.Errorf("expected no output before the error, got %q", out.String())
				}

				return
			}

			if err != nil {
				t.Fatalf("run failed: %v", err)
			}

			expected := ""
			if len(fx.Output) > 0 {
				expected = strings.Join(fx.Output, "\n") + "\n"
			}

			if out.String() != expected {
				t.Errorf("expected output %q, got %q", expected, out.String())
			}
		})
	}
}

func runSource(out *bytes.Buffer, source string) error {
	lines, err := scanner.New(source).Scan()
	if err != nil {
		return err
	}

	return interp.New(out).Run(parser.Parse(lines))
}

func TestEnvironmentPersistsAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(&out)

	for _, source := range []string{"var x = 'kept'!", "print(x)!"} {
		lines, err := scanner.New(source).Scan()
		if err != nil {
			t.Fatal(err)
		}

		if err := in.Run(parser.Parse(lines)); err != nil {
			t.Fatal(err)
		}
	}

	if out.String() != "kept\n" {
		t.Errorf("expected kept, got %q", out.String())
	}
}
