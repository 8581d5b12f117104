package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// cvRouter mounts the CV manager behind a stub of the route guard's
// context values.
func cvRouter(cv *fakeCV, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCVHandler(cv)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("session_id", uuid.New())
		c.Set("access_token", "user-access-token")
	})
	router.GET("/dashboard/cv", h.List)
	router.GET("/dashboard/cv/sections/new", h.NewSection)
	router.POST("/dashboard/cv/sections", h.SaveSection)
	router.DELETE("/dashboard/cv/sections/:id", h.RemoveSection)
	router.POST("/dashboard/cv/personal-info", h.SavePersonalInfo)
	return router
}

func TestCVHandler_ListIncludesDefaultProfile(t *testing.T) {
	userID := uuid.New()
	router := cvRouter(&fakeCV{}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/cv", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	info := body["personal_info"].(map[string]any)
	assert.Equal(t, "مبارك سعيد محمد سيف", info["full_name"])
	assert.EqualValues(t, 0, body["total"])
}

func TestCVHandler_NewSectionSeedsForm(t *testing.T) {
	router := cvRouter(&fakeCV{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/cv/sections/new?type=education", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	section := body["section"].(map[string]any)
	assert.Equal(t, domain.SectionEducation, section["type"])
	assert.NotEmpty(t, section["start_date"])
	assert.Empty(t, section["title"])
}

func TestCVHandler_NewSectionRejectsUnknownType(t *testing.T) {
	router := cvRouter(&fakeCV{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/cv/sections/new?type=award", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCVHandler_SaveSection(t *testing.T) {
	cv := &fakeCV{}
	router := cvRouter(cv, uuid.New())

	payload := []byte(`{"type":"experience","title":"مطور برمجيات","organization":"شركة التقنية","start_date":"2024-01-15"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/cv/sections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["total"])
	require.Len(t, cv.sections, 1)
	assert.Nil(t, cv.sections[0].EndDate)
}

func TestCVHandler_SaveSectionRejectsBadDate(t *testing.T) {
	router := cvRouter(&fakeCV{}, uuid.New())

	payload := []byte(`{"type":"experience","title":"مطور","organization":"شركة","start_date":"15/01/2024"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/cv/sections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCVHandler_RemoveSectionRequiresConfirmation(t *testing.T) {
	section := domain.CVSection{ID: uuid.New(), Type: domain.SectionEducation}
	cv := &fakeCV{sections: []domain.CVSection{section}}
	router := cvRouter(cv, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/dashboard/cv/sections/"+section.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, cv.sections, 1)
}

func TestCVHandler_SavePersonalInfo(t *testing.T) {
	cv := &fakeCV{}
	router := cvRouter(cv, uuid.New())

	payload := []byte(`{"full_name":"مبارك سعيد","title":"مطور","email":"eng.mubarakai@gmail.com"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/cv/personal-info", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	info := body["personal_info"].(map[string]any)
	assert.Equal(t, "مبارك سعيد", info["full_name"])
	require.NotNil(t, cv.info)
}

func TestCVHandler_SavePersonalInfoRejectsBadEmail(t *testing.T) {
	router := cvRouter(&fakeCV{}, uuid.New())

	payload := []byte(`{"full_name":"مبارك","title":"مطور","email":"not-an-email"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/cv/personal-info", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
