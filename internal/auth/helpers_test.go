package auth_test

import (
	"encoding/json"
	"net/http/httptest"
)

func decodeBody(res *httptest.ResponseRecorder, target any) error {
	return json.NewDecoder(res.Body).Decode(target)
}
