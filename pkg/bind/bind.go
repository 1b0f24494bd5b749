// Package bind decodes an HTTP request body into a struct and validates it.
// JSON bodies and url-encoded/multipart forms are both supported; the product
// form arrives as multipart when it carries a file upload.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/vitrinehq/vitrine/config"
	"github.com/vitrinehq/vitrine/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 4 MB).
// Multipart forms are limited separately by the upload cap.
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20 // 4 MB
	}
	return n
}

// Request decodes the body into dest based on Content-Type and runs
// validation. Returns (errs, nil) when there are validation failures and
// (nil, err) when the body is malformed.
func Request(r *http.Request, dest interface{}) (map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		return JSON(r, dest)
	default:
		return Form(r, dest)
	}
}

// JSON decodes r.Body as JSON into dest and runs validation.
// The body is capped at MAX_BODY_BYTES to prevent memory exhaustion.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// Form fills dest's string/number/bool fields from url-encoded or multipart
// form values (matched by the `form` tag, falling back to the json tag) and
// runs validation. File parts are left to the caller (ctx.FormFile).
func Form(r *http.Request, dest interface{}) (map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.New("bind: dest must be a pointer to a struct")
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fv := rv.Field(i)
		if !fv.CanSet() {
			continue
		}

		key := formKey(field)
		if key == "" {
			continue
		}
		if _, ok := r.Form[key]; !ok {
			continue
		}
		raw := r.FormValue(key)

		if err := setField(fv, raw); err != nil {
			return map[string]string{key: fmt.Sprintf("The %s field is malformed.", key)}, nil
		}
	}

	errs := validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

func setField(fv reflect.Value, raw string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	}
	return nil
}

func formKey(f reflect.StructField) string {
	if tag := f.Tag.Get("form"); tag != "" && tag != "-" {
		return strings.SplitN(tag, ",", 2)[0]
	}
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		return strings.SplitN(tag, ",", 2)[0]
	}
	return strings.ToLower(f.Name)
}
