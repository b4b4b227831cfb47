package cmdutil

import (
	"fmt"
	"io"

	"github.com/flarebyte/papyrus/internal/fileio"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// PrintValue writes v as JSON. query, when set, is a gjson path selecting
// part of the document. Output is pretty-printed unless compact is set.
func PrintValue(w io.Writer, v any, query string, compact bool) error {
	data, err := fileio.EncodeJSON(v, 0)
	if err != nil {
		return err
	}
	if query != "" {
		res := gjson.GetBytes(data, query)
		if !res.Exists() {
			return fmt.Errorf("query %q matched nothing", query)
		}
		data = []byte(res.Raw)
	}
	if compact {
		data = append(pretty.Ugly(data), '\n')
	} else {
		data = pretty.Pretty(data)
	}
	_, err = w.Write(data)
	return err
}
