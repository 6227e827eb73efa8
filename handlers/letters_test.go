// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/enstack-letters/letters"
	"github.com/danielhkuo/enstack-letters/models"
	"github.com/danielhkuo/enstack-letters/store"
	"github.com/danielhkuo/enstack-letters/testutil"
)

func setupLetterHandler(t *testing.T) (*LetterHandler, *store.SQLStore) {
	t.Helper()
	st := testutil.SetupTestStore(t)
	return NewLetterHandler(letters.NewService(st)), st
}

func TestAddLetter(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedFields map[string]string
	}{
		{
			name:           "valid letter",
			requestBody:    `{"letter":"D","value":4,"strokes":2,"vowel":false}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "zero values are accepted",
			requestBody:    `{"letter":"Z","value":0,"strokes":5,"vowel":false}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate letter",
			requestBody:    `{"letter":"A","value":10,"strokes":2,"vowel":true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate letter in other case",
			requestBody:    `{"letter":"a","value":10,"strokes":2,"vowel":true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate letter after trim",
			requestBody:    `{"letter":" A ","value":10,"strokes":2,"vowel":true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate value",
			requestBody:    `{"letter":"D","value":1,"strokes":2,"vowel":false}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "value equals strokes",
			requestBody:    `{"letter":"D","value":7,"strokes":7,"vowel":false}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing letter",
			requestBody:    `{"value":4,"strokes":2,"vowel":false}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: map[string]string{"letter": "Letter cannot be blank"},
		},
		{
			name:           "blank letter",
			requestBody:    `{"letter":"   ","value":4,"strokes":2,"vowel":false}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: map[string]string{"letter": "Letter cannot be blank"},
		},
		{
			name:           "letter too long",
			requestBody:    `{"letter":"ABCDEFGHIJK","value":4,"strokes":2,"vowel":false}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: map[string]string{"letter": "Letter must be at most 10 characters"},
		},
		{
			name:           "missing vowel",
			requestBody:    `{"letter":"D","value":4,"strokes":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: map[string]string{"vowel": "Vowel status must be specified"},
		},
		{
			name:           "value has wrong type",
			requestBody:    `{"letter":"D","value":"four","strokes":2,"vowel":false}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: map[string]string{"value": "Value cannot be blank"},
		},
		{
			name:           "empty object",
			requestBody:    `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: map[string]string{
				"letter":  "Letter cannot be blank",
				"value":   "Value cannot be blank",
				"strokes": "Strokes cannot be blank",
				"vowel":   "Vowel status must be specified",
			},
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, st := setupLetterHandler(t)
			testutil.CreateTestLetter(t, st, "A", 1, 3, true)

			req := testutil.MakeRequest("POST", "/letter/add", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.AddLetter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			switch {
			case tt.expectedStatus == http.StatusCreated:
				var resp models.AddLetterResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Status != models.StatusCreated {
					t.Errorf("Expected status 0, got %d", resp.Status)
				}
			case tt.expectedFields != nil:
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if len(resp.Fields) != len(tt.expectedFields) {
					t.Errorf("Expected fields %v, got %v", tt.expectedFields, resp.Fields)
				}
				for field, msg := range tt.expectedFields {
					if resp.Fields[field] != msg {
						t.Errorf("Expected %s message %q, got %q", field, msg, resp.Fields[field])
					}
				}
			case tt.requestBody != "invalid json":
				var resp models.AddLetterResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Status != models.StatusRejected {
					t.Errorf("Expected status 1, got %d", resp.Status)
				}
			}
		})
	}
}

func TestAddThenGetLetter(t *testing.T) {
	handler, _ := setupLetterHandler(t)

	w := httptest.NewRecorder()
	handler.AddLetter(w, testutil.MakeRequest("POST", "/letter/add", `{"letter":"Ng","value":14,"strokes":4,"vowel":false}`, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	req := httptest.NewRequest("GET", "/letter/Ng", nil)
	req.SetPathValue("letter", "Ng")
	w = httptest.NewRecorder()
	handler.GetLetter(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.LetterResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.ID == 0 {
		t.Error("Expected non-zero id")
	}
	if resp.Letter != "Ng" || resp.Value != 14 || resp.Strokes != 4 || resp.Vowel {
		t.Errorf("Unexpected letter %+v", resp)
	}
}

func TestGetLetter(t *testing.T) {
	handler, st := setupLetterHandler(t)
	testutil.CreateTestLetter(t, st, "A", 1, 3, true)

	tests := []struct {
		name           string
		letter         string
		expectedStatus int
	}{
		{"existing letter", "A", http.StatusOK},
		{"other case", "a", http.StatusNotFound},
		{"missing letter", "Q", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/letter/"+tt.letter, nil)
			req.SetPathValue("letter", tt.letter)
			w := httptest.NewRecorder()

			handler.GetLetter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusNotFound {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != "Letter not found" {
					t.Errorf("Expected 'Letter not found', got %q", resp.Message)
				}
			}
		})
	}
}

func TestListLetters(t *testing.T) {
	handler, st := setupLetterHandler(t)

	w := httptest.NewRecorder()
	handler.ListLetters(w, httptest.NewRequest("GET", "/letters", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Message != "No letters found in the database" {
		t.Errorf("Unexpected message %q", errResp.Message)
	}

	testutil.CreateTestLetter(t, st, "C", 3, 1, false)
	testutil.CreateTestLetter(t, st, "A", 1, 3, true)
	testutil.CreateTestLetter(t, st, "B", 2, 3, false)

	w = httptest.NewRecorder()
	handler.ListLetters(w, httptest.NewRequest("GET", "/letters", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LettersResponse
	testutil.AssertJSON(t, w, &resp)
	want := []string{"A", "B", "C"}
	if len(resp.Letters) != len(want) {
		t.Fatalf("Expected %v, got %v", want, resp.Letters)
	}
	for i := range want {
		if resp.Letters[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, resp.Letters)
			break
		}
	}
}

func TestFilterLetters(t *testing.T) {
	handler, st := setupLetterHandler(t)
	testutil.CreateTestLetter(t, st, "C", 3, 1, false)
	testutil.CreateTestLetter(t, st, "A", 1, 3, true)
	testutil.CreateTestLetter(t, st, "B", 2, 3, false)

	tests := []struct {
		name           string
		val            string
		expectedStatus int
		expected       []string
	}{
		{"all letters in insertion order", "3", http.StatusOK, []string{"C", "A", "B"}},
		{"subset", "2", http.StatusOK, []string{"A", "B"}},
		{"zero matches nothing", "0", http.StatusNotFound, nil},
		{"not a number", "abc", http.StatusNotFound, nil},
		{"overflow matches every letter", "99999999999999999999999", http.StatusOK, []string{"C", "A", "B"}},
		{"negative", "-1", http.StatusNotFound, nil},
		{"negative overflow", "-99999999999999999999999", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/letter/filter/"+tt.val, nil)
			req.SetPathValue("val", tt.val)
			w := httptest.NewRecorder()

			handler.FilterLetters(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expected == nil {
				return
			}

			var resp models.LettersResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Letters) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, resp.Letters)
			}
			for i := range tt.expected {
				if resp.Letters[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, resp.Letters)
					break
				}
			}
		})
	}
}

func TestShuffleLetters(t *testing.T) {
	handler, st := setupLetterHandler(t)

	w := httptest.NewRecorder()
	handler.ShuffleLetters(w, httptest.NewRequest("GET", "/letter/shuffle", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	testutil.CreateTestLetter(t, st, "A", 1, 3, true)
	testutil.CreateTestLetter(t, st, "B", 2, 3, false)
	testutil.CreateTestLetter(t, st, "C", 3, 1, false)

	for i := 0; i < 10; i++ {
		w = httptest.NewRecorder()
		handler.ShuffleLetters(w, httptest.NewRequest("GET", "/letter/shuffle", nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ShuffleResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.ShuffledLetters) != 3 {
			t.Fatalf("Expected 3 letters, got %q", resp.ShuffledLetters)
		}
		for _, c := range "ABC" {
			found := false
			for _, s := range resp.ShuffledLetters {
				if s == c {
					found = true
				}
			}
			if !found {
				t.Fatalf("Shuffle %q is missing %c", resp.ShuffledLetters, c)
			}
		}
	}
}

// failingStore answers every call with a connection error.
type failingStore struct {
	store.LetterStore
}

var errConnection = errors.New("connection reset")

func (failingStore) FindByLetter(context.Context, string) (*models.Letter, error) {
	return nil, errConnection
}

func (failingStore) FindByLetterFold(context.Context, string) (*models.Letter, error) {
	return nil, errConnection
}

func (failingStore) ListOrderedByValue(context.Context) ([]models.Letter, error) {
	return nil, errConnection
}

func (failingStore) ListOrderedByID(context.Context, int) ([]models.Letter, error) {
	return nil, errConnection
}

func (failingStore) ListLetters(context.Context) ([]string, error) {
	return nil, errConnection
}

func (failingStore) Ping(context.Context) error {
	return errConnection
}

func TestLetterHandlers_DatabaseError(t *testing.T) {
	handler := NewLetterHandler(letters.NewService(failingStore{}))

	getReq := httptest.NewRequest("GET", "/letter/A", nil)
	getReq.SetPathValue("letter", "A")
	filterReq := httptest.NewRequest("GET", "/letter/filter/3", nil)
	filterReq.SetPathValue("val", "3")

	tests := []struct {
		name    string
		handler http.HandlerFunc
		req     *http.Request
	}{
		{"list", handler.ListLetters, httptest.NewRequest("GET", "/letters", nil)},
		{"get", handler.GetLetter, getReq},
		{"filter", handler.FilterLetters, filterReq},
		{"shuffle", handler.ShuffleLetters, httptest.NewRequest("GET", "/letter/shuffle", nil)},
		{"add", handler.AddLetter, testutil.MakeRequest("POST", "/letter/add", `{"letter":"D","value":4,"strokes":2,"vowel":false}`, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, tt.req)

			testutil.AssertStatus(t, w, http.StatusInternalServerError)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != "Database error" {
				t.Errorf("Expected 'Database error', got %q", resp.Message)
			}
		})
	}
}
