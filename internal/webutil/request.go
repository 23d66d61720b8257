package webutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"winestudy/internal/model"
)

// MaxBodyBytes はリクエストボディの上限です。
const MaxBodyBytes = 1 << 20

// ReadBody はボディを最後まで読み切って返します。Body が nil の場合は空スライスです。
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte{}, nil
	}
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, model.NewAppError("VALIDATION_ERROR", "Request body too large", "", model.ErrInvalidInput)
	}
	return body, nil
}

// DecodeJSONBody はリクエストボディをデコードします。
// 空のボディは {} として扱い、不正な JSON は 400 (Invalid JSON body) になります。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := ReadBody(r)
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return model.NewAppError("VALIDATION_ERROR", "Invalid JSON body", "", model.ErrInvalidInput)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return model.NewAppError("VALIDATION_ERROR", "Invalid JSON body", "", model.ErrInvalidInput)
	}
	return nil
}

// QueryParams はクエリ文字列を正規化します。
// 1回だけ現れるキーは string、繰り返されたキーは []string になります。
func QueryParams(r *http.Request) map[string]any {
	params := make(map[string]any)
	for key, values := range r.URL.Query() {
		if len(values) == 1 {
			params[key] = values[0]
		} else {
			params[key] = values
		}
	}
	return params
}

// QueryStrings は QueryParams の値を []string に平坦化します。空文字は除きます。
func QueryStrings(params map[string]any, key string) []string {
	var raw []string
	switch v := params[key].(type) {
	case string:
		raw = []string{v}
	case []string:
		raw = v
	default:
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// QueryString はキーの最初の値を返します。
func QueryString(params map[string]any, key string) string {
	values := QueryStrings(params, key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// BearerToken は "Authorization: Bearer <token>" からトークンを取り出します。
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
