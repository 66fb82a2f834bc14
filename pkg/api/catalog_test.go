package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_categories.php", r.URL.Path)
		w.Write([]byte(`{"result":"success","data":[
			{"id":1,"name":"Action","image_url":"https://img.example/action.png"},
			{"id":2,"name":"Comedy","image_url":""}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	categories, err := client.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 1, categories[0].ID)
	assert.Equal(t, "Action", categories[0].Name)
}

func TestCategoriesEmptyListIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	categories, err := client.Categories()
	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoriesServerErrorMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","message":"database down"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Categories()
	require.Error(t, err)

	serverErr, ok := err.(*ServerError)
	require.True(t, ok, "expected *ServerError, got %T", err)
	assert.Equal(t, "database down", serverErr.Message)
	assert.Equal(t, "database down", serverErr.Error())
}

func TestComicsPostsCategoryAndSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/get_comics.php", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3", r.PostForm.Get("id"))
		assert.Equal(t, "Action", r.PostForm.Get("name"))
		assert.Equal(t, "dragon", r.PostForm.Get("cari"))

		w.Write([]byte(`{"result":"success","data":[{"id":10,"title":"Dragon Tale","rating":4.5}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	comics, err := client.Comics(3, "Action", "dragon")
	require.NoError(t, err)
	require.Len(t, comics, 1)
	assert.Equal(t, 10, comics[0].ID)
	assert.Equal(t, "Dragon Tale", comics[0].Title)
	assert.Equal(t, 4.5, comics[0].Rating)
}

func TestComicsOmitsSearchWhenEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, hasSearch := r.PostForm["cari"]
		assert.False(t, hasSearch, "empty search must not be sent")
		w.Write([]byte(`{"result":"success","data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Comics(3, "Action", "")
	assert.NoError(t, err)
}

func TestComicsKeepsServerOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","data":[
			{"id":9,"title":"Z"},{"id":1,"title":"A"},{"id":5,"title":"M"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	comics, err := client.Comics(1, "Any", "")
	require.NoError(t, err)
	require.Len(t, comics, 3)
	assert.Equal(t, []int{9, 1, 5}, []int{comics[0].ID, comics[1].ID, comics[2].ID})
}
