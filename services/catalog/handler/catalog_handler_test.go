package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	catalog "shelfshare/internal/catalogService"
	"shelfshare/internal/lenderrors"
	"shelfshare/internal/metadata"
	model "shelfshare/internal/models"
)

func setupCatalogRouter(service CatalogServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCatalogHandler(service)

	router.GET("/books", h.ListBooksHandler)
	router.POST("/books", h.CreateBookHandler)
	router.POST("/books/metadata", h.ExtractMetadataHandler)
	router.GET("/books/:id", h.GetBookHandler)
	router.POST("/books/:id/compare", h.CompareConditionHandler)
	router.GET("/recommendations", h.RecommendationsHandler)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestListBooksHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		mockSetup     func(m *MockCatalogServiceInterface)
		expectedCount int
	}{
		{
			name: "all_books",
			path: "/books",
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().ListBooks("").Return([]model.Book{
					{BookID: "book-1", Title: "1984"},
					{BookID: "book-2", Title: "The Alchemist"},
				})
			},
			expectedCount: 2,
		},
		{
			name: "query_forwarded",
			path: "/books?q=orwell",
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().ListBooks("orwell").Return([]model.Book{{BookID: "book-1", Title: "1984"}})
			},
			expectedCount: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w := performRequest(t, setupCatalogRouter(mockService), http.MethodGet, tc.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			data, ok := parseEnvelope(t, w)["data"].([]any)
			require.True(t, ok)
			require.Len(t, data, tc.expectedCount)
		})
	}
}

func TestGetBookHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		bookID         string
		mockSetup      func(m *MockCatalogServiceInterface)
		expectedStatus int
	}{
		{
			name:   "found",
			bookID: "book-1",
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().GetBook("book-1").Return(model.Book{BookID: "book-1", Title: "1984"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not_found",
			bookID: "ghost",
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().GetBook("ghost").Return(model.Book{}, lenderrors.ErrBookNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w := performRequest(t, setupCatalogRouter(mockService), http.MethodGet, "/books/"+tc.bookID, nil)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				data, ok := parseEnvelope(t, w)["data"].(map[string]any)
				require.True(t, ok)
				require.Equal(t, "1984", data["title"])
			}
		})
	}
}

func TestCreateBookHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           any
		mockSetup      func(m *MockCatalogServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: map[string]any{"title": "New Book", "author": "Anon"},
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().CreateBook(gomock.Any()).DoAndReturn(func(input catalog.CreateBookInput) (model.Book, error) {
					require.Equal(t, "New Book", input.Title)
					require.Equal(t, "Anon", input.Author)
					return model.Book{BookID: "book-7", Title: input.Title, Available: true}, nil
				})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_title_rejected_before_service",
			body:           map[string]any{"author": "Anon"},
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no_session",
			body: map[string]any{"title": "New Book", "author": "Anon"},
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().CreateBook(gomock.Any()).Return(model.Book{}, lenderrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w := performRequest(t, setupCatalogRouter(mockService), http.MethodPost, "/books", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				data, ok := parseEnvelope(t, w)["data"].(map[string]any)
				require.True(t, ok)
				require.Equal(t, "book-7", data["id"])
				require.Equal(t, true, data["available"])
			}
		})
	}
}

func TestCompareConditionHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           any
		mockSetup      func(m *MockCatalogServiceInterface)
		expectedStatus int
	}{
		{
			name: "compared",
			body: map[string]any{"currentImage": "data:image/png;base64,xyz"},
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().CompareCondition("book-1", "data:image/png;base64,xyz").
					Return(catalog.ComparisonResult{Similarity: 90, Differences: []string{"No significant changes detected"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "book_not_found",
			body: map[string]any{"currentImage": "img"},
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().CompareCondition("book-1", "img").Return(catalog.ComparisonResult{}, lenderrors.ErrBookNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing_image_rejected",
			body:           map[string]any{},
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			tc.mockSetup(mockService)

			w := performRequest(t, setupCatalogRouter(mockService), http.MethodPost, "/books/book-1/compare", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				data, ok := parseEnvelope(t, w)["data"].(map[string]any)
				require.True(t, ok)
				require.Equal(t, float64(90), data["similarity"])
			}
		})
	}
}

func TestRecommendationsHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	mockService.EXPECT().Recommendations().Return([]model.Book{
		{BookID: "book-1", Available: true},
		{BookID: "book-2", Available: true},
	})

	w := performRequest(t, setupCatalogRouter(mockService), http.MethodGet, "/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := parseEnvelope(t, w)["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)
}

func TestExtractMetadataHandler(t *testing.T) {
	t.Parallel()

	t.Run("extracted", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockCatalogServiceInterface(ctrl)
		mockService.EXPECT().ExtractMetadata("Title: Foo\nby Bar").
			Return(metadata.Metadata{Title: "Foo", Author: "Bar"})

		w := performRequest(t, setupCatalogRouter(mockService), http.MethodPost, "/books/metadata",
			map[string]any{"text": "Title: Foo\nby Bar"})
		require.Equal(t, http.StatusOK, w.Code)

		data, ok := parseEnvelope(t, w)["data"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "Foo", data["title"])
		require.Equal(t, "Bar", data["author"])
	})

	t.Run("missing_text_rejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockCatalogServiceInterface(ctrl)

		w := performRequest(t, setupCatalogRouter(mockService), http.MethodPost, "/books/metadata", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
