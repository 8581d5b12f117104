package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
)

func TestProjectService_List_OrdersByNewest(t *testing.T) {
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Project{
			{ID: uuid.New(), Title: "newest", Category: "web"},
			{ID: uuid.New(), Title: "older", Category: "web"},
		})
	})

	svc := NewProjectService(client)
	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "newest", projects[0].Title)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/rest/v1/projects", (*requests)[0].Path)
	assert.Contains(t, (*requests)[0].Query, "order=created_at.desc")
}

func TestProjectService_List_EmptyStoreYieldsEmptySlice(t *testing.T) {
	client, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	svc := NewProjectService(client)
	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectService_Save_InsertThenRefetch(t *testing.T) {
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			return
		}
		json.NewEncoder(w).Encode([]domain.Project{{ID: uuid.New(), Title: "متجر إلكتروني", Category: "web"}})
	})

	svc := NewProjectService(client)
	req := &dto.ProjectSaveRequest{
		Title:       "متجر إلكتروني",
		Description: "تطبيق ويب",
		Category:    "web",
	}

	projects, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "متجر إلكتروني", projects[0].Title)

	// Insert first, then the re-fetch.
	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)
	assert.Equal(t, http.MethodGet, (*requests)[1].Method)
}

func TestProjectService_Save_ExistingIDPatches(t *testing.T) {
	id := uuid.New()
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte("[]"))
	})

	svc := NewProjectService(client)
	req := &dto.ProjectSaveRequest{
		ID:          &id,
		Title:       "Updated",
		Description: "Updated description",
		Category:    "web",
	}

	_, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPatch, (*requests)[0].Method)
	assert.Contains(t, (*requests)[0].Query, "id=eq."+id.String())
}

func TestProjectService_Save_InvalidInputNeverReachesStore(t *testing.T) {
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	svc := NewProjectService(client)
	req := &dto.ProjectSaveRequest{Title: "", Description: "", Category: ""}

	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)

	var validationErrors domain.ValidationErrors
	assert.True(t, errors.As(err, &validationErrors))
	assert.Empty(t, *requests)
}

func TestProjectService_Remove_DeleteThenRefetch(t *testing.T) {
	id := uuid.New()
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte("[]"))
	})

	svc := NewProjectService(client)
	projects, err := svc.Remove(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, projects)

	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodDelete, (*requests)[0].Method)
	assert.Contains(t, (*requests)[0].Query, "id=eq."+id.String())
	assert.Equal(t, http.MethodGet, (*requests)[1].Method)
}
