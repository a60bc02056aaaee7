package cmd

import (
	"flag"

	"github.com/etnz/pnl"
	"github.com/etnz/pnl/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var tradeFiles = predict.Or(predict.Files("*.csv"), predict.Files("*.json"))

// flagPredictors predicts the values of the flags that have a fixed set.
func flagPredictors() map[string]complete.Predictor {
	var methods predict.Set
	for _, m := range pnl.AccountingMethods() {
		methods = append(methods, m.String())
	}
	return map[string]complete.Predictor{
		"method":   methods,
		"format":   predict.Set{formatCSV, formatJSONL, formatMarkdown},
		"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
	}
}

// completion returns the completion tree of the commands, built from their flags.
func completion(cfg Config) *complete.Command {
	root := &complete.Command{Sub: map[string]*complete.Command{}}
	predictors := flagPredictors()
	for _, c := range commands(cfg) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: tradeFiles}
		fs.VisitAll(func(fl *flag.Flag) {
			switch p, ok := predictors[fl.Name]; {
			case ok:
				sub.Flags[fl.Name] = p
			case isBoolFlag(fl):
				sub.Flags[fl.Name] = predict.Nothing
			default:
				sub.Flags[fl.Name] = predict.Something
			}
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// Complete runs the shell completion of the program name if the shell asked
// for it, and exits. Otherwise it returns.
func Complete(name string, cfg Config) {
	completion(cfg).Complete(name)
}
