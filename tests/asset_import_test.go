package tests

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/epeers/estateplan/internal/models"
)

// buildMultipartRequest builds a multipart/form-data request with an optional
// CSV file part named "assets"
func buildMultipartRequest(t *testing.T, url, csvContent string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if csvContent != "" {
		part, err := writer.CreateFormFile("assets", "assets.csv")
		if err != nil {
			t.Fatalf("failed to create assets file part: %v", err)
		}
		if _, err := part.Write([]byte(csvContent)); err != nil {
			t.Fatalf("failed to write CSV content: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-User-ID", fmt.Sprint(testAdvisorID))
	return req
}

const importCSV = "id,category,name,approximate_value,owned_by,ownership_form,has_bene,primary_beneficiaries\n" +
	"h1,real estate,12 Elm St,\"$400,000\",Client and Spouse,TBE,No,\n" +
	"b1,bank,First Federal,12000,Client,Sole,Yes,Carol:50;Dan:50\n"

func TestAssetImportMultipart(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := getTestPool(t)
	router := setupTestRouter(pool)
	client := createTestClient(t, router, "Import Test")
	url := fmt.Sprintf("/clients/%d/assets/import", client.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, url, importCSV))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ImportAssetsResponse
	decode(t, w, &resp)
	if resp.Imported != 2 {
		t.Errorf("expected 2 imported assets, got %d", resp.Imported)
	}
	if len(resp.Assets.RealEstate) != 1 || resp.Assets.RealEstate[0].ApproximateValue != 400000 {
		t.Errorf("unexpected real estate: %+v", resp.Assets.RealEstate)
	}

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/clients/%d/assets", client.ID), nil, 0)
	var stored models.NormalizedAssets
	decode(t, w, &stored)
	if len(stored.All) != 2 || stored.Bank[0].HasBene != models.BeneYes {
		t.Errorf("expected the import to be stored, got %+v", stored)
	}
}

func TestAssetImportRawBody(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := getTestPool(t)
	router := setupTestRouter(pool)
	client := createTestClient(t, router, "Raw Import Test")

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/clients/%d/assets/import", client.ID), strings.NewReader(importCSV))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("X-User-ID", fmt.Sprint(testAdvisorID))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAssetImportErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := getTestPool(t)
	router := setupTestRouter(pool)
	client := createTestClient(t, router, "Bad Import Test")
	url := fmt.Sprintf("/clients/%d/assets/import", client.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, url, ""))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a file part, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, url, "category,name\nbank,First Federal\n"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a missing column, got %d", w.Code)
	}

	req := buildMultipartRequest(t, url, importCSV)
	req.Header.Del("X-User-ID")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without an advisor, got %d", w.Code)
	}
}
