package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]int{"monsters_killed": 10}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, len(`{"monsters_killed":10}`), n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"monsters_killed":10}`, w.Body.String())
}

func TestWriteJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Username string `json:"username"`
		Kills    int32  `json:"monsters_killed"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr error
		anyErr  bool
	}{
		{name: "single object", body: `{"username":"hero","monsters_killed":3}`, want: payload{Username: "hero", Kills: 3}},
		{name: "trailing whitespace", body: "{\"username\":\"hero\"}\n", want: payload{Username: "hero"}},
		{name: "empty", body: "", wantErr: ErrEmptyBody},
		{name: "two values", body: `{"username":"a"}{"username":"b"}`, wantErr: ErrTrailingJSON},
		{name: "malformed", body: `{"username":`, anyErr: true},
		{name: "wrong type", body: `{"monsters_killed":"many"}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got payload
			err := ReadJSON(r, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReadJSON_BodyOverLimit(t *testing.T) {
	body := `{"username":"` + strings.Repeat("a", MaxJSONBodySize) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var dst map[string]string
	assert.Error(t, ReadJSON(r, &dst))
}

func TestReadJSON_NilBody(t *testing.T) {
	r := &http.Request{}

	assert.ErrorIs(t, ReadJSON(r, &struct{}{}), ErrEmptyBody)
}
