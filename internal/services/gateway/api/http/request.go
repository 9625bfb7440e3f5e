package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	customerv1 "github.com/louisbranch/customers/api/customer/v1"
)

const maxBodyBytes = 1 << 20

var (
	errMissingField = errors.New("is required")
	errInvalidText  = errors.New("must be valid UTF-8")
)

// ageValue accepts an age sent either as a JSON number or a numeric string.
type ageValue struct {
	value int32
}

func (a *ageValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(text))
	}
	v, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("age must be a 32-bit integer")
	}
	a.value = int32(v)
	return nil
}

// CustomerBody is the body of /create and /update. Pointers distinguish an
// absent field from its zero value.
type CustomerBody struct {
	ID      *string   `json:"id"`
	Name    *string   `json:"name"`
	Age     *ageValue `json:"age"`
	Address *string   `json:"address"`
}

// RemoveBody is the body of /remove.
type RemoveBody struct {
	CustomerID *string `json:"customer_id"`
}

func (b CustomerBody) toCustomer(requireID bool) (*customerv1.Customer, error) {
	if requireID && b.ID == nil {
		return nil, fieldError("id")
	}
	if b.Name == nil {
		return nil, fieldError("name")
	}
	if b.Age == nil {
		return nil, fieldError("age")
	}
	if b.Address == nil {
		return nil, fieldError("address")
	}
	if requireID && !utf8.ValidString(*b.ID) {
		return nil, textError("id")
	}
	if !utf8.ValidString(*b.Name) {
		return nil, textError("name")
	}
	if !utf8.ValidString(*b.Address) {
		return nil, textError("address")
	}
	out := &customerv1.Customer{
		Name:    *b.Name,
		Age:     b.Age.value,
		Address: *b.Address,
	}
	if requireID {
		out.Id = *b.ID
	}
	return out, nil
}

func (b RemoveBody) customerID() (string, error) {
	if b.CustomerID == nil {
		return "", fieldError("customer_id")
	}
	if !utf8.ValidString(*b.CustomerID) {
		return "", textError("customer_id")
	}
	return *b.CustomerID, nil
}

func fieldError(name string) error {
	return fmt.Errorf("%s %w", name, errMissingField)
}

func textError(name string) error {
	return fmt.Errorf("%s %w", name, errInvalidText)
}

// decodeCustomerBody reads a JSON or form encoded customer body.
func decodeCustomerBody(w http.ResponseWriter, r *http.Request) (CustomerBody, error) {
	var body CustomerBody
	form, isForm, err := readForm(w, r)
	if err != nil {
		return body, err
	}
	if !isForm {
		return body, decodeJSON(w, r, &body)
	}
	body.ID = formValue(form, "id")
	body.Name = formValue(form, "name")
	body.Address = formValue(form, "address")
	if raw := formValue(form, "age"); raw != nil {
		v, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 32)
		if err != nil {
			return body, fmt.Errorf("age must be a 32-bit integer")
		}
		body.Age = &ageValue{value: int32(v)}
	}
	return body, nil
}

// decodeRemoveBody reads a JSON or form encoded remove body.
func decodeRemoveBody(w http.ResponseWriter, r *http.Request) (string, error) {
	var body RemoveBody
	form, isForm, err := readForm(w, r)
	if err != nil {
		return "", err
	}
	if isForm {
		body.CustomerID = formValue(form, "customer_id")
	} else if err := decodeJSON(w, r, &body); err != nil {
		return "", err
	}
	return body.customerID()
}

func readForm(w http.ResponseWriter, r *http.Request) (url.Values, bool, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		return nil, false, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, true, fmt.Errorf("invalid form body: %w", err)
	}
	return r.PostForm, true, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func formValue(form url.Values, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
