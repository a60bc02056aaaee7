package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run executes c with args, and returns what it printed on stdout.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var out bytes.Buffer
	previous := stdout
	stdout = &out
	t.Cleanup(func() { stdout = previous })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return out.String(), status
}

func newCalc() *calcCmd { return &calcCmd{inputFlags: inputFlags{cfg: DefaultConfig()}} }

func TestCalc_Golden(t *testing.T) {
	for _, method := range []string{"fifo", "lifo"} {
		t.Run(method, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("..", "testdata", "trades_"+method+".csv"))
			if err != nil {
				t.Fatal(err)
			}
			got, status := run(t, newCalc(), "-method", method, "../testdata/trades.csv")
			if status != exitOK {
				t.Fatalf("calc exit status = %d, want %d", status, exitOK)
			}
			if got != string(want) {
				t.Errorf("calc output:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestCalc_EmptyInputPrintsHeader(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(file, []byte("# nothing yet\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, status := run(t, newCalc(), file)
	if status != exitOK {
		t.Fatalf("calc exit status = %d, want %d", status, exitOK)
	}
	if got != "timestamp,symbol,pnl\n" {
		t.Errorf("calc output = %q, want the header only", got)
	}
}

func TestCalc_Formats(t *testing.T) {
	file := filepath.Join(t.TempDir(), "trades.csv")
	if err := os.WriteFile(file, []byte("1,AAPL,B,100,10\n2,AAPL,S,100.125,10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"-format", "jsonl"}, `{"timestamp":2,"symbol":"AAPL","pnl":1.25}` + "\n"},
		{[]string{"-format", "csv", "-precision", "0"}, "timestamp,symbol,pnl\n2,AAPL,1\n"},
		{[]string{"-format", "md"}, "# Realized PnL\n\n| Timestamp | Symbol | PnL |\n|---:|:---|---:|\n| 2 | AAPL | 1.25 |\n"},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			got, status := run(t, newCalc(), append(tc.args, file)...)
			if status != exitOK {
				t.Fatalf("calc exit status = %d, want %d", status, exitOK)
			}
			if got != tc.want {
				t.Errorf("calc output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCalc_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.csv")
	if err := os.WriteFile(invalid, []byte("1,AAPL,B,100,10\n2,AAPL,X,100,10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"No file", nil, exitBadArgs},
		{"Two files", []string{invalid, invalid}, exitBadArgs},
		{"Unknown format", []string{"-format", "xml", invalid}, exitBadArgs},
		{"Negative precision", []string{"-precision", "-1", invalid}, exitBadArgs},
		{"Missing file", []string{filepath.Join(dir, "missing.csv")}, exitFileNotFound},
		{"Strict parse error", []string{"-strict", invalid}, exitParseError},
		{"Lenient parse error", []string{invalid}, exitOK},
		{"Unknown method", []string{"-method", "average", invalid}, exitBadMethod},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, status := run(t, newCalc(), tc.args...); status != tc.want {
				t.Errorf("calc %q exit status = %d, want %d", tc.args, status, tc.want)
			}
		})
	}
}

func TestCalc_JSONPath(t *testing.T) {
	got, status := run(t, newCalc(), "-jsonpath", "$.fills", "../testdata/fills.json")
	if status != exitOK {
		t.Fatalf("calc exit status = %d, want %d", status, exitOK)
	}
	if want := "timestamp,symbol,pnl\n1000000002,AAPL,200.00\n"; got != want {
		t.Errorf("calc output = %q, want %q", got, want)
	}
}

func TestLots(t *testing.T) {
	got, status := run(t, &lotsCmd{inputFlags: inputFlags{cfg: DefaultConfig()}}, "../testdata/trades.csv")
	if status != exitOK {
		t.Fatalf("lots exit status = %d, want %d", status, exitOK)
	}
	for _, want := range []string{
		"| AAPL | buy | 10 | 149.8 | 1000000070 |",
		"| MSFT | sell | 5 | 304.9 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("lots output does not contain %q:\n%s", want, got)
		}
	}
}

func TestReport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Currency = "USD"
	got, status := run(t, &reportCmd{inputFlags: inputFlags{cfg: cfg}}, "../testdata/trades.csv")
	if status != exitOK {
		t.Fatalf("report exit status = %d, want %d", status, exitOK)
	}
	if !strings.Contains(got, "Method: **fifo**, 20 trades processed.") {
		t.Errorf("report output has no title:\n%s", got)
	}
	if !strings.Contains(got, "| **Total** |") || !strings.Contains(got, "$") {
		t.Errorf("report output has no total in USD:\n%s", got)
	}
}

func TestTopic(t *testing.T) {
	got, status := run(t, &topicCmd{}, "fifo")
	if status != exitOK {
		t.Fatalf("topic exit status = %d, want %d", status, exitOK)
	}
	if !strings.HasPrefix(got, "# First In, First Out") {
		t.Errorf("topic fifo = %q", got)
	}
	if _, status := run(t, &topicCmd{}, "nosuchtopic"); status != exitBadArgs {
		t.Errorf("topic nosuchtopic exit status = %d, want %d", status, exitBadArgs)
	}
}

func TestCompletion(t *testing.T) {
	root := completion(DefaultConfig())
	for _, name := range []string{"calc", "lots", "report", "topic"} {
		if root.Sub[name] == nil {
			t.Errorf("no completion for %q", name)
		}
	}
	calc := root.Sub["calc"]
	for _, fl := range []string{"method", "precision", "format", "strict", "jsonpath", "v"} {
		if _, ok := calc.Flags[fl]; !ok {
			t.Errorf("no completion for calc -%s", fl)
		}
	}
	if got := calc.Flags["method"].Predict(""); strings.Join(got, ",") != "fifo,lifo" {
		t.Errorf("calc -method predicts %v, want fifo,lifo", got)
	}
}
