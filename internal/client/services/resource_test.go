package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/netx"
)

func TestResourceService_Routes(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{Resp: `[{"id":1,"name":"Gold"}]`}
	svc := NewResourceService(fc)

	list, err := svc.List(ctx, "plan")
	require.NoError(t, err)
	assert.Equal(t, "GET", fc.LastMethod)
	assert.Equal(t, "plan/", fc.LastPath)
	require.Len(t, list, 1)
	assert.Equal(t, "Gold", list[0]["name"])

	fc.Resp = `{"id":2,"name":"Silver"}`
	draft := models.Record{"name": "Silver"}
	created, err := svc.Create(ctx, "plan", draft)
	require.NoError(t, err)
	assert.Equal(t, "POST", fc.LastMethod)
	assert.Equal(t, "plan/", fc.LastPath)
	assert.Equal(t, draft, fc.LastBody)
	assert.Equal(t, "Silver", created["name"])

	_, err = svc.Update(ctx, "plan", "2", draft)
	require.NoError(t, err)
	assert.Equal(t, "PUT", fc.LastMethod)
	assert.Equal(t, "plan/2/", fc.LastPath)

	require.NoError(t, svc.Delete(ctx, "plan", "2"))
	assert.Equal(t, "DELETE", fc.LastMethod)
	assert.Equal(t, "plan/2/", fc.LastPath)
}

func TestResourceService_EmptyListIsNotNil(t *testing.T) {
	svc := NewResourceService(&fakeClient{Resp: `null`})
	list, err := svc.List(context.Background(), "user")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestResourceService_ErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	svc := NewResourceService(&fakeClient{Err: boom})

	_, err := svc.List(ctx, "user")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list user")

	_, err = svc.Create(ctx, "user", models.Record{})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Update(ctx, "user", "1", models.Record{})
	assert.Contains(t, err.Error(), "update user/1")

	err = svc.Delete(ctx, "user", "1")
	assert.Contains(t, err.Error(), "delete user/1")
}

func TestResourceService_IDStaysOnePathSegment(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
		query []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.EscapedPath())
		query = append(query, r.URL.RawQuery)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	svc := NewResourceService(client.NewHTTPClient(srv.URL+"/api", 5*time.Second, nil))

	require.NoError(t, svc.Delete(ctx, "user", "5?x=1"))
	require.NoError(t, svc.Delete(ctx, "user", "../customer/9"))
	_, err := svc.Update(ctx, "user", "7#frag", models.Record{"name": "x"})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"/api/user/5%3Fx=1/",
		"/api/user/..%2Fcustomer%2F9/",
		"/api/user/7%23frag/",
	}, paths)
	assert.Equal(t, []string{"", "", ""}, query)
}

func TestResourceService_RejectsRouteChangingIDs(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	svc := NewResourceService(fc)

	for _, id := range []string{"", ".", ".."} {
		assert.ErrorIs(t, svc.Delete(ctx, "user", id), netx.ErrBadSegment, "id %q", id)
		_, err := svc.Update(ctx, "user", id, models.Record{})
		assert.ErrorIs(t, err, netx.ErrBadSegment, "id %q", id)
	}
	assert.Zero(t, fc.Calls)
}
