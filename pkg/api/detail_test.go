package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentFetchesPagesAndCommentsTogether(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/get_comic_pages.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "7", r.PostForm.Get("id"))

		w.Write([]byte(`{"result":"success","data":{
			"pages":[
				{"page_number":1,"image_url":"https://img.example/1.jpg"},
				{"page_number":2,"image_url":"https://img.example/2.jpg"}
			],
			"comments":[
				{"id":11,"user":"alice","comment":"bagus!","created_at":"2024-06-01 10:00:00"}
			]
		}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	content, err := client.Content(7)
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load(), "pages and comments come in one round-trip")
	require.Len(t, content.Pages, 2)
	assert.Equal(t, 1, content.Pages[0].PageNumber)
	require.Len(t, content.Comments, 1)
	assert.Equal(t, "alice", content.Comments[0].User)
	assert.Equal(t, "bagus!", content.Comments[0].Comment)
}

func TestSubmitRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit_rating.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "7", r.PostForm.Get("comic_id"))
		assert.Equal(t, "4", r.PostForm.Get("rating"))
		assert.Equal(t, "alice", r.PostForm.Get("user_id"))
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.SubmitRating(7, "alice", 4))
}

func TestSubmitRatingZeroMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitRating(7, "alice", 0)

	assert.ErrorIs(t, err, ErrNoRating)
	assert.Equal(t, int64(0), calls.Load())
}

func TestSubmitRatingOutOfRangeMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.ErrorIs(t, client.SubmitRating(7, "alice", 6), ErrRatingOutside)
	assert.Equal(t, int64(0), calls.Load())
}

func TestSubmitRatingSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","message":"sudah pernah rating"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitRating(7, "alice", 3)
	require.Error(t, err)
	assert.Equal(t, "sudah pernah rating", err.Error())
}

func TestSubmitComment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit_comment.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "7", r.PostForm.Get("comic_id"))
		assert.Equal(t, "seru banget", r.PostForm.Get("comment"))
		assert.Equal(t, "alice", r.PostForm.Get("user_id"))
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.SubmitComment(7, "alice", "seru banget"))
}

func TestSubmitCommentEmptyMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitComment(7, "alice", "")

	assert.ErrorIs(t, err, ErrEmptyComment)
	assert.Equal(t, int64(0), calls.Load())
}
