package webutil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"winestudy/internal/model"
	"winestudy/internal/webutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/grapes?grape_type=red&aroma=cherry&aroma=berry&q=", nil)

	params := webutil.QueryParams(req)

	assert.Equal(t, "red", params["grape_type"])
	assert.Equal(t, []string{"cherry", "berry"}, params["aroma"])
	assert.Equal(t, "", params["q"])
	assert.NotContains(t, params, "missing")

	assert.Equal(t, []string{"red"}, webutil.QueryStrings(params, "grape_type"))
	assert.Equal(t, []string{"cherry", "berry"}, webutil.QueryStrings(params, "aroma"))
	assert.Empty(t, webutil.QueryStrings(params, "q"))
	assert.Nil(t, webutil.QueryStrings(params, "missing"))
	assert.Equal(t, "cherry", webutil.QueryString(params, "aroma"))
	assert.Equal(t, "", webutil.QueryString(params, "missing"))
}

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name     string
		body     string
		wantName string
		wantErr  string
	}{
		{name: "正常", body: `{"name":"ana"}`, wantName: "ana"},
		{name: "空のボディは {} として扱う", body: "", wantName: ""},
		{name: "空白のみも {}", body: "  \n ", wantName: ""},
		{name: "不正な JSON", body: `{"name":`, wantErr: "Invalid JSON body"},
		{name: "大きすぎるボディ", body: `{"name":"` + strings.Repeat("a", webutil.MaxBodyBytes) + `"}`, wantErr: "Request body too large"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var dst payload
			err := webutil.DecodeJSONBody(req, &dst)
			if tc.wantErr != "" {
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tc.wantErr, appErr.Detail.Message)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, dst.Name)
		})
	}
}

func TestAuthToken(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "Bearer ヘッダー", header: "Bearer abc", want: "abc"},
		{name: "小文字の bearer", header: "bearer abc", want: "abc"},
		{name: "クッキー", cookie: "from-cookie", want: "from-cookie"},
		{name: "ヘッダーが優先", header: "Bearer from-header", cookie: "from-cookie", want: "from-header"},
		{name: "Basic は無視", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "どちらも無い", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: tc.cookie})
			}
			assert.Equal(t, tc.want, webutil.AuthToken(req))
		})
	}
}
