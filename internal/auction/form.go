package auction

import (
	"bytes"
	"mime/multipart"
	"net/url"
	"sort"
)

const formContentType = "application/x-www-form-urlencoded"

// formBody encodes fields as an urlencoded request body
func formBody(fields map[string]string) []byte {
	vals := url.Values{}
	for k, v := range fields {
		vals.Set(k, v)
	}
	return []byte(vals.Encode())
}

// multipartBody encodes fields as a multipart/form-data body, skipping empty
// values so optional form fields are omitted rather than sent blank.
// Returns the body and its content type (which carries the boundary).
func multipartBody(fields map[string]string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// Deterministic field order keeps request fixtures stable.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if fields[k] == "" {
			continue
		}
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
