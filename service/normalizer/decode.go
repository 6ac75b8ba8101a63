package normalizer

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"storefront.GO/model/payload"
)

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fmt.Sprint(data), nil
		}
		return data, nil
	}
}

// numberToMoneyHook accepts a bare number where a price object is expected.
func numberToMoneyHook() mapstructure.DecodeHookFunc {
	moneyType := reflect.TypeOf(payload.Money{})
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != moneyType {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int64, reflect.Float32, reflect.Float64, reflect.String:
			return map[string]interface{}{"value": data}, nil
		}
		return data, nil
	}
}

var rawProductDecodeHook = mapstructure.ComposeDecodeHookFunc(
	numberToStringHook(),
	numberToMoneyHook(),
)

// Decode maps a raw search result into RawProduct. Fields that cannot be
// decoded are left at their zero value; the error, if any, only reports them.
func Decode(raw map[string]interface{}) (payload.RawProduct, error) {
	var p payload.RawProduct
	if raw == nil {
		return p, nil
	}
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       rawProductDecodeHook,
		Result:           &p,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return p, err
	}
	err = dec.Decode(raw)
	return p, err
}
