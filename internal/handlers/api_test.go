// internal/handlers/api_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"winestudy/internal/handlers"
	"winestudy/internal/model"
	"winestudy/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRouter_FallbacksAndCORS(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		path         string
		expectedCode int
		expectedBody string
	}{
		{name: "存在しないルート", method: http.MethodGet, path: "/api/nowhere", expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Not found"}`},
		{name: "/api 外の存在しないルート", method: http.MethodGet, path: "/wines", expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Not found"}`},
		{name: "メソッド違い", method: http.MethodPost, path: "/health", expectedCode: http.StatusMethodNotAllowed, expectedBody: `{"detail":"Method not allowed"}`},
		{name: "存在しないパスへの OPTIONS", method: http.MethodOptions, path: "/any/path/at/all", expectedCode: http.StatusOK, expectedBody: ""},
		{name: "保護されたパスへの OPTIONS", method: http.MethodOptions, path: "/api/tastings", expectedCode: http.StatusOK, expectedBody: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := executeRequest(createRequest(t, tc.method, tc.path, nil, ""))

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestRouter_HealthAndRoot(t *testing.T) {
	rr := executeRequest(createRequest(t, http.MethodGet, "/health", nil, ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = executeRequest(createRequest(t, http.MethodGet, "/api/", nil, ""))
	require.Equal(t, http.StatusOK, rr.Code)
	var info model.APIInfo
	decodeBody(t, rr, &info)
	assert.NotEmpty(t, info.Message)
	assert.NotEmpty(t, info.Version)

	rr = executeRequest(createRequest(t, http.MethodGet, "/metrics", nil, ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "winestudy_http_requests_total")
}

func TestAuthAPI_RegisterLoginMe(t *testing.T) {
	email := fmt.Sprintf("Ana_%s@Example.com", uuid.NewString()[:8])

	// 登録: 201、クッキーとトークン
	rr := executeRequest(createRequest(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": "secret123", "name": "Ana"}, ""))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var registered struct {
		UserID            string  `json:"user_id"`
		Email             string  `json:"email"`
		PreferredLanguage string  `json:"preferred_language"`
		Token             string  `json:"token"`
		PasswordHash      *string `json:"password_hash"`
	}
	decodeBody(t, rr, &registered)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "pt", registered.PreferredLanguage)
	assert.Nil(t, registered.PasswordHash, "ハッシュはレスポンスに含めない")
	assert.NotContains(t, rr.Body.String(), "password")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Equal(t, registered.Token, cookies[0].Value)

	// 同じメール (大文字小文字違い) は 400
	rr = executeRequest(createRequest(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": registered.Email, "password": "other", "name": "Ana 2"}, ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Email already registered"}`, rr.Body.String())

	// ログイン
	rr = executeRequest(createRequest(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": "secret123"}, ""))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = executeRequest(createRequest(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": "wrong"}, ""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"Invalid credentials"}`, rr.Body.String())

	// /me は Bearer でもクッキーでも同じユーザー
	rr = executeRequest(createRequest(t, http.MethodGet, "/api/auth/me", nil, registered.Token))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), registered.UserID)

	req := createRequest(t, http.MethodGet, "/api/auth/me", nil, "")
	req.AddCookie(cookies[0])
	rr = executeRequest(req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), registered.UserID)

	rr = executeRequest(createRequest(t, http.MethodGet, "/api/auth/me", nil, "not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rr.Body.String())

	// ログアウトはクッキーを消すだけ
	rr = executeRequest(createRequest(t, http.MethodPost, "/api/auth/logout", nil, ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rr.Body.String())
	require.Len(t, rr.Result().Cookies(), 1)
	assert.Equal(t, -1, rr.Result().Cookies()[0].MaxAge)

	// トークン自体は失効しないので、有効期限までは使える
	rr = executeRequest(createRequest(t, http.MethodGet, "/api/auth/me", nil, registered.Token))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthAPI_UpdateLanguage(t *testing.T) {
	token, _ := registerTestUser(t)

	rr := executeRequest(createRequest(t, http.MethodPut, "/api/auth/language", map[string]string{"language": "en"}, token))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Language updated","language":"en"}`, rr.Body.String())

	rr = executeRequest(createRequest(t, http.MethodPut, "/api/auth/language", map[string]string{"language": "fr"}, token))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Invalid language"}`, rr.Body.String())

	rr = executeRequest(createRequest(t, http.MethodPut, "/api/auth/language", map[string]string{"language": "en"}, ""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthAPI_OAuthSession(t *testing.T) {
	oauth := mocks.NewOAuthProvider(t)
	router := newTestRouter(testDB, testTokens, oauth)
	email := fmt.Sprintf("oauth_%s@example.com", uuid.NewString()[:8])

	oauth.On("FetchProfile", mock.Anything, "good-code").
		Return(&model.OAuthProfile{ID: "g-" + email, Email: email, Name: "OAuth User"}, nil).Twice()

	for i, wantNew := range []bool{true, false} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/auth/session", map[string]string{"code": "good-code"}, ""))
		require.Equal(t, http.StatusOK, rr.Code, "call %d: %s", i, rr.Body.String())

		var resp struct {
			Email     string `json:"email"`
			Token     string `json:"token"`
			IsNewUser *bool  `json:"is_new_user"`
		}
		decodeBody(t, rr, &resp)
		assert.Equal(t, email, resp.Email)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.IsNewUser)
		assert.Equal(t, wantNew, *resp.IsNewUser)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/auth/session", map[string]string{}, ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Authorization code is required"}`, rr.Body.String())
}

func TestAPI_MissingFieldMessages(t *testing.T) {
	token, _ := registerTestUser(t)

	testCases := []struct {
		name         string
		method       string
		path         string
		body         interface{}
		token        string
		expectedBody string
	}{
		{name: "登録", method: http.MethodPost, path: "/api/auth/register", body: map[string]string{"email": "x@example.com"}, expectedBody: `{"detail":"Email, password and name are required"}`},
		{name: "ログイン", method: http.MethodPost, path: "/api/auth/login", body: map[string]string{"password": "x"}, expectedBody: `{"detail":"Email and password are required"}`},
		{name: "クイズ回答", method: http.MethodPost, path: "/api/quiz/submit", body: map[string]string{"question_id": "q1"}, expectedBody: `{"detail":"question_id and selected_answer are required"}`},
		{name: "テイスティング", method: http.MethodPost, path: "/api/tastings", body: map[string]string{"notes": "no name"}, token: token, expectedBody: `{"detail":"wine_name is required"}`},
		{name: "空のボディ", method: http.MethodPost, path: "/api/auth/login", body: "", expectedBody: `{"detail":"Email and password are required"}`},
		{name: "不正な JSON", method: http.MethodPost, path: "/api/auth/login", body: `{"email":`, expectedBody: `{"detail":"Invalid JSON body"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := executeRequest(createRequest(t, tc.method, tc.path, tc.body, tc.token))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestCatalogAPI(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		expectedCode int
		wantIDs      []string
		idField      string
		expectedBody string
	}{
		{name: "タイプで絞り込み", path: "/api/grapes?grape_type=white", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"chardonnay", "riesling", "sauvignon_blanc"}},
		{name: "タイプとアロマ", path: "/api/grapes?grape_type=white&aroma=citrus&aroma=oak", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"chardonnay"}},
		{name: "タイプの複数指定", path: "/api/grapes?grape_type=red&grape_type=white&aroma=cherry&aroma=leather", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"sangiovese", "tempranillo"}},
		{name: "ポルトガル語のアロマ", path: "/api/grapes?aroma=Violeta", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"malbec", "touriga_nacional"}},
		{name: "産地で絞り込み", path: "/api/grapes?region=Bordeaux", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"cabernet_sauvignon", "merlot", "sauvignon_blanc"}},
		{name: "産地とタイプ", path: "/api/grapes?region=burgundy&grape_type=red", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"pinot_noir"}},
		{name: "アロマタグ経由", path: "/api/aromas/cherry/grapes", expectedCode: http.StatusOK, idField: "grape_id", wantIDs: []string{"merlot", "nebbiolo", "pinot_noir", "sangiovese", "tempranillo"}},
		{name: "国で地域を絞り込み", path: "/api/regions?country_id=argentina", expectedCode: http.StatusOK, idField: "region_id", wantIDs: []string{"la_rioja_arg", "mendoza", "salta"}},
		{name: "品種で地域を絞り込み", path: "/api/regions?grape=malbec", expectedCode: http.StatusOK, idField: "region_id", wantIDs: []string{"cahors", "mendoza", "salta"}},
		{name: "国と品種", path: "/api/regions?country_id=france&grape=Riesling", expectedCode: http.StatusOK, idField: "region_id", wantIDs: []string{"alsace"}},
		{name: "該当品種なし", path: "/api/regions?grape=Zinfandel", expectedCode: http.StatusOK, idField: "region_id", wantIDs: []string{}},
		{name: "新世界の国", path: "/api/countries?world_type=new_world", expectedCode: http.StatusOK, idField: "country_id", wantIDs: []string{"argentina", "australia", "chile", "new_zealand", "south_africa", "usa"}},
		{name: "旧世界の国", path: "/api/countries?world_type=old_world", expectedCode: http.StatusOK, idField: "country_id", wantIDs: []string{"austria", "france", "germany", "greece", "italy", "portugal", "spain"}},
		{name: "カテゴリでアロマを絞り込み", path: "/api/aromas?category=fruit", expectedCode: http.StatusOK, idField: "tag_id", wantIDs: []string{"apple", "berry", "blackberry", "cherry", "citrus", "plum"}},
		{name: "花のアロマ", path: "/api/aromas?category=floral", expectedCode: http.StatusOK, idField: "tag_id", wantIDs: []string{"floral", "rose"}},
		{name: "未知のカテゴリ", path: "/api/aromas?category=vegetal", expectedCode: http.StatusOK, idField: "tag_id", wantIDs: []string{}},
		{name: "存在しないブドウ", path: "/api/grapes/zinfandel", expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Grape not found"}`},
		{name: "存在しない国", path: "/api/countries/atlantis", expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Country not found"}`},
		{name: "検索語なし", path: "/api/search", expectedCode: http.StatusBadRequest, expectedBody: `{"detail":"Query parameter q is required"}`},
		{name: "不正なカテゴリ", path: "/api/search?q=a&category=wines", expectedCode: http.StatusBadRequest, expectedBody: `{"detail":"Invalid category"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := executeRequest(createRequest(t, http.MethodGet, tc.path, nil, ""))
			require.Equal(t, tc.expectedCode, rr.Code, rr.Body.String())
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}
			var items []map[string]interface{}
			decodeBody(t, rr, &items)
			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item[tc.idField].(string))
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}

	t.Run("国一覧は英語名順", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/countries", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var countries []model.Country
		decodeBody(t, rr, &countries)
		require.Len(t, countries, 13)
		assert.Equal(t, "argentina", countries[0].CountryID)
	})

	t.Run("seed の地域とブドウが一覧に出る", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/regions", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var regions []model.Region
		decodeBody(t, rr, &regions)
		assert.Len(t, regions, 77)

		rr = executeRequest(createRequest(t, http.MethodGet, "/api/grapes", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var grapes []map[string]interface{}
		decodeBody(t, rr, &grapes)
		assert.Len(t, grapes, 12)
	})

	t.Run("地域は pt/en の記述子を持つ", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/regions/mendoza", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var region model.Region
		decodeBody(t, rr, &region)
		assert.Equal(t, "argentina", region.CountryID)
		assert.Contains(t, []string(region.KeyGrapes), "Malbec")
		assert.NotEmpty(t, region.WineStylesPT)
		assert.NotEmpty(t, region.WineStylesEN)
		assert.Contains(t, string(region.Terroir), "soil_en")
	})

	t.Run("ブドウは言語非依存のノートを持つ", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/grapes/pinot_noir", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var grape map[string]interface{}
		decodeBody(t, rr, &grape)
		assert.Equal(t, []interface{}{"Cereja", "Framboesa", "Rosa", "Terra"}, grape["aromatic_notes"])
		assert.Equal(t, []interface{}{"Frutas vermelhas", "Cogumelo", "Sub-bosque"}, grape["flavor_notes"])
		assert.Equal(t, []interface{}{"Cherry", "Raspberry", "Rose", "Earth"}, grape["aroma_notes_en"])
	})

	t.Run("検索はカテゴリごとの配列を返す", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/search?q=BORD", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var result model.SearchResult
		decodeBody(t, rr, &result)
		require.Len(t, result.Regions, 3)
		assert.Equal(t, "bordeaux", result.Regions[0].RegionID)
		assert.Empty(t, result.Grapes)
		assert.Empty(t, result.Countries)
	})
}

func TestStudyAndQuizAPI(t *testing.T) {
	t.Run("トラックとレッスン", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/study/tracks", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var tracks []model.StudyTrack
		decodeBody(t, rr, &tracks)
		require.Len(t, tracks, 3)

		rr = executeRequest(createRequest(t, http.MethodGet, "/api/study/tracks/basic/lessons", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var lessons []model.Lesson
		decodeBody(t, rr, &lessons)
		require.Len(t, lessons, 5)
		for i, l := range lessons {
			assert.Equal(t, i+1, l.OrderIndex)
		}

		rr = executeRequest(createRequest(t, http.MethodGet, "/api/study/lessons/nope", nil, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Lesson not found"}`, rr.Body.String())
	})

	t.Run("limit 件の重複しない問題", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			rr := executeRequest(createRequest(t, http.MethodGet, "/api/quiz/tracks/basic/questions?limit=3", nil, ""))
			require.Equal(t, http.StatusOK, rr.Code)
			var questions []model.QuizQuestion
			decodeBody(t, rr, &questions)
			require.Len(t, questions, 3)
			seen := map[string]bool{}
			for _, q := range questions {
				assert.False(t, seen[q.QuestionID], "duplicate question %s", q.QuestionID)
				seen[q.QuestionID] = true
			}
		}
	})

	t.Run("数値でない limit はデフォルト", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/quiz/tracks/basic/questions?limit=abc", nil, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var questions []model.QuizQuestion
		decodeBody(t, rr, &questions)
		assert.Len(t, questions, 5)
	})

	t.Run("未認証の回答は採点のみ", func(t *testing.T) {
		token, _ := registerTestUser(t)

		rr := executeRequest(createRequest(t, http.MethodPost, "/api/quiz/submit", map[string]interface{}{"question_id": "q1", "selected_answer": 1}, ""))
		require.Equal(t, http.StatusOK, rr.Code)
		var result model.QuizSubmitResponse
		decodeBody(t, rr, &result)
		assert.True(t, result.Correct)

		// 別ユーザーの進捗は変わらない
		rr = executeRequest(createRequest(t, http.MethodGet, "/api/progress", nil, token))
		require.Equal(t, http.StatusOK, rr.Code)
		var progress model.ProgressResponse
		decodeBody(t, rr, &progress)
		assert.Empty(t, progress.QuizScores)
	})

	t.Run("認証済みの正解はトラックごとに加算", func(t *testing.T) {
		token, _ := registerTestUser(t)

		submissions := []struct {
			questionID string
			answer     int
		}{{"q1", 1}, {"q2", 2}, {"q3", 0}, {"q4", 3}}
		for _, s := range submissions {
			rr := executeRequest(createRequest(t, http.MethodPost, "/api/quiz/submit",
				map[string]interface{}{"question_id": s.questionID, "selected_answer": s.answer}, token))
			require.Equal(t, http.StatusOK, rr.Code)
		}

		rr := executeRequest(createRequest(t, http.MethodGet, "/api/progress", nil, token))
		require.Equal(t, http.StatusOK, rr.Code)
		var progress model.ProgressResponse
		decodeBody(t, rr, &progress)
		assert.Equal(t, map[string]int{"basic": 3}, progress.QuizScores)
	})

	t.Run("存在しない問題", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodPost, "/api/quiz/submit", map[string]interface{}{"question_id": "q999", "selected_answer": 0}, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Question not found"}`, rr.Body.String())
	})

	t.Run("レッスン完了は冪等", func(t *testing.T) {
		token, _ := registerTestUser(t)
		for i := 0; i < 2; i++ {
			rr := executeRequest(createRequest(t, http.MethodPost, "/api/study/lessons/basic_1/complete", nil, token))
			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"message":"Lesson marked as complete","lesson_id":"basic_1"}`, rr.Body.String())
		}

		rr := executeRequest(createRequest(t, http.MethodGet, "/api/progress", nil, token))
		var progress model.ProgressResponse
		decodeBody(t, rr, &progress)
		assert.Equal(t, []string{"basic_1"}, progress.CompletedLessons)
		assert.NotNil(t, progress.LastActivityDate)

		rr = executeRequest(createRequest(t, http.MethodPost, "/api/study/lessons/basic_1/complete", nil, ""))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestTastingAPI(t *testing.T) {
	token, userID := registerTestUser(t)
	otherToken, _ := registerTestUser(t)

	progressOf := func(tok string) model.ProgressResponse {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/progress", nil, tok))
		require.Equal(t, http.StatusOK, rr.Code)
		var p model.ProgressResponse
		decodeBody(t, rr, &p)
		return p
	}

	// 作成: サブレコードはそのまま返る
	rr := executeRequest(createRequest(t, http.MethodPost, "/api/tastings", map[string]interface{}{
		"wine_name": "Malbec Reserva",
		"vintage":   2019,
		"nose":      map[string]interface{}{"intensity": "pronounced", "aromas": []string{"plum", "violet"}},
		"palate":    map[string]interface{}{"tannin": 4},
	}, token))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created map[string]interface{}
	decodeBody(t, rr, &created)
	tastingID := created["tasting_id"].(string)
	assert.Equal(t, userID, created["user_id"])
	assert.Equal(t, map[string]interface{}{"intensity": "pronounced", "aromas": []interface{}{"plum", "violet"}}, created["nose"])
	assert.Equal(t, map[string]interface{}{}, created["appearance"])
	assert.Equal(t, 1, progressOf(token).TotalTastings)

	// 取得・一覧
	rr = executeRequest(createRequest(t, http.MethodGet, "/api/tastings/"+tastingID, nil, token))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tannin":4}`, mustJSON(t, rr, "palate"))

	rr = executeRequest(createRequest(t, http.MethodGet, "/api/tastings", nil, token))
	require.Equal(t, http.StatusOK, rr.Code)
	var list []map[string]interface{}
	decodeBody(t, rr, &list)
	require.Len(t, list, 1)

	// 他人からは見えないし消せない
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rr = executeRequest(createRequest(t, method, "/api/tastings/"+tastingID, nil, otherToken))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Tasting not found"}`, rr.Body.String())
	}
	rr = executeRequest(createRequest(t, http.MethodGet, "/api/tastings", nil, otherToken))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	// 削除で 0 に戻る。二度目は 404
	rr = executeRequest(createRequest(t, http.MethodDelete, "/api/tastings/"+tastingID, nil, token))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Tasting deleted"}`, rr.Body.String())
	assert.Equal(t, 0, progressOf(token).TotalTastings)

	rr = executeRequest(createRequest(t, http.MethodDelete, "/api/tastings/"+tastingID, nil, token))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	t.Run("カウンターは 0 未満にならない", func(t *testing.T) {
		// カウンターを経由せずに直接入れた記録を削除する
		orphan := model.TastingNote{TastingID: "tasting_orphan_" + uuid.NewString()[:8], UserID: userID, WineName: "Orphan"}
		require.NoError(t, testDB.Create(&orphan).Error)

		rr := executeRequest(createRequest(t, http.MethodDelete, "/api/tastings/"+orphan.TastingID, nil, token))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 0, progressOf(token).TotalTastings)
	})

	t.Run("サブレコードはオブジェクトのみ", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodPost, "/api/tastings",
			map[string]interface{}{"wine_name": "Bad", "palate": []int{1, 2}}, token))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"detail":"palate must be an object"}`, rr.Body.String())
	})

	t.Run("未認証", func(t *testing.T) {
		rr := executeRequest(createRequest(t, http.MethodGet, "/api/tastings", nil, ""))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"detail":"Not authenticated"}`, rr.Body.String())
	})
}

func TestSeedAPI(t *testing.T) {
	testCases := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{name: "正しい管理トークン", token: testAdminToken, expectedCode: http.StatusOK},
		{name: "誤ったトークン", token: "guess", expectedCode: http.StatusUnauthorized},
		{name: "トークン無し", token: "", expectedCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createRequest(t, http.MethodPost, "/api/seed", nil, "")
			if tc.token != "" {
				req.Header.Set("X-Admin-Token", tc.token)
			}
			rr := executeRequest(req)
			require.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusOK {
				// 既に投入済みなので何も増えない
				var resp model.SeedResponse
				decodeBody(t, rr, &resp)
				assert.Equal(t, "Database seeded successfully", resp.Message)
				for table, n := range resp.Counts {
					assert.Zero(t, n, table)
				}
			}
		})
	}

	t.Run("管理トークン未設定ならルート自体が無い", func(t *testing.T) {
		router := handlers.NewRouter(handlers.RouterConfig{Logger: testLogger, Tokens: testTokens}, handlers.Services{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/seed", nil, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// mustJSON はレスポンスの指定フィールドを JSON 文字列で返します。
func mustJSON(t *testing.T, rr *httptest.ResponseRecorder, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	decodeBody(t, rr, &m)
	raw, ok := m[field]
	require.True(t, ok, "field %s missing", field)
	return string(raw)
}
