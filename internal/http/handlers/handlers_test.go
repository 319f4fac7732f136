package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/service"
)

// Тесты разбора тела POST /profile/skills.
//
// Покрытие:
//  - id навыка числом, строкой из цифр и подписью каталога, в snake и camel;
//  - нецелый proficiency -> 400 без подмены значением по умолчанию;
//  - неизвестные поля, хвост после объекта и лимит размера тела.

func decodeBody(t *testing.T, body string) (addSkillRequest, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/profile/skills", strings.NewReader(body))
	var req addSkillRequest
	err := decodeStrict(httptest.NewRecorder(), r, &req)
	return req, err
}

func TestAddSkillRequest_Input(t *testing.T) {
	tcs := []struct {
		name string
		body string
		want models.AddSkillInput
	}{
		{"number snake", `{"skill_id": 11, "proficiency": 4, "years_experience": 2.5}`, models.AddSkillInput{SkillRef: "11", Proficiency: 4, YearsExperience: 2.5}},
		{"string camel", `{"skillId": "12", "proficiency": "5", "yearsExperience": "3"}`, models.AddSkillInput{SkillRef: "12", Proficiency: 5, YearsExperience: 3}},
		{"catalog label", `{"skill_id": "React (Frontend)"}`, models.AddSkillInput{SkillRef: "React (Frontend)"}},
		{"snake wins", `{"skill_id": "1", "skillId": "2"}`, models.AddSkillInput{SkillRef: "1"}},
		{"missing id", `{"proficiency": 2}`, models.AddSkillInput{Proficiency: 2}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			req, err := decodeBody(t, tc.body)
			require.NoError(t, err)

			got, err := req.input()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAddSkillRequest_FractionalProficiencyRejected(t *testing.T) {
	for _, body := range []string{`{"skill_id": 1, "proficiency": 3.5}`, `{"skill_id": 1, "proficiency": "high"}`} {
		req, err := decodeBody(t, body)
		require.NoError(t, err)

		_, err = req.input()
		require.ErrorIs(t, err, service.ErrInvalidArgument, body)
	}
}

func TestDecodeStrict_Rejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown field": `{"skill_id": 1, "level": 3}`,
		"trailing data": `{"skill_id": 1} {"skill_id": 2}`,
		"not json":      `skill=1`,
		"too large":     `{"skill_id": "` + strings.Repeat("a", maxBodyBytes) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeBody(t, body)
			require.Error(t, err)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, http.StatusCreated, map[string]int{"a": 1})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 1, got["a"])
}
