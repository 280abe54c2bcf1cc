package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goliatone/go-currencyfield/pkg/renderers/tui"
)

func writeResult(w io.Writer, format string, res tui.Result) error {
	switch format {
	case "", "json":
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "pretty":
		_, err := fmt.Fprintf(w, "String value: %s\nNumerical value: %v\nMax exceeded: %t\nMin not reached: %t\n",
			res.Text, res.Value, res.MaxExceeded, res.MinNotReached)
		return err
	default:
		return fmt.Errorf("invalid --output %q (json, pretty)", format)
	}
}
