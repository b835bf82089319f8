package param

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.SetAliasTag("json")
	d.RegisterConverter(decimal.Decimal{}, func(s string) reflect.Value {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(v)
	})
	return d
}()

// Binding binds query values, route params and an optional json body onto v
func Binding(r *http.Request, v interface{}) error {
	values := r.URL.Query()
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for idx, key := range rctx.URLParams.Keys {
			values.Set(key, rctx.URLParams.Values[idx])
		}
	}

	if err := decoder.Decode(v, values); err != nil {
		return err
	}

	if r.Body != nil && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return err
		}
	}

	return nil
}
