package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
)

func TestOfferingService_List(t *testing.T) {
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Service{
			{ID: uuid.New(), Title: "تطوير الويب", Description: "وصف", Icon: "Code"},
		})
	})

	svc := NewOfferingService(client)
	offerings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, offerings, 1)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/rest/v1/services", (*requests)[0].Path)
	assert.Contains(t, (*requests)[0].Query, "order=created_at.desc")
}

func TestOfferingService_Save_RejectsUnknownIcon(t *testing.T) {
	client, requests := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	svc := NewOfferingService(client)
	req := &dto.ServiceSaveRequest{Title: "خدمة", Description: "وصف", Icon: "Rocket"}

	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, *requests)
}

func TestOfferingService_IconNames(t *testing.T) {
	svc := NewOfferingService(nil)
	assert.Equal(t, []string{"Code", "PenTool", "Server", "Database"}, svc.IconNames())
}
