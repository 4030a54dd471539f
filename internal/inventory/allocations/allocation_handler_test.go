package allocations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ketankishore27/inventory-management/internal/repository/repositorytest"
	custom_error "github.com/ketankishore27/inventory-management/pkg/errors"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) PersistAllocation(ctx context.Context, req models.AllocationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAllocationRepository) FindByAssignee(ctx context.Context, name, email string) ([]models.Allocation, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Allocation, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) UpdateAllocation(ctx context.Context, req models.UpdateAllocationRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAllocationRepository) DeleteAllocation(ctx context.Context, serialNumber string) (int64, error) {
	args := m.Called(ctx, serialNumber)
	return args.Get(0).(int64), args.Error(1)
}

func setupRouter(repo AllocationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	log := zap.NewNop()
	NewAllocationHandler(NewAllocationService(repo, log), log).RegisterRoutes(router)
	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAddResourceAllocation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockAllocationRepository)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "renames api fields",
			body: `{"name":"Jane","serialNumber":"SN1","allocationDate":"2024-01-01","po":"CC1","location":"HQ","email":"jane@x.com","details":"laptop"}`,
			setupMock: func(m *MockAllocationRepository) {
				m.On("PersistAllocation", mock.Anything, mock.MatchedBy(func(req models.AllocationRequest) bool {
					return req.SerialNumber == "SN1" && *req.PO == "CC1" && *req.AllocationDate == "2024-01-01"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"status": "Success"},
		},
		{
			name: "details posted under detail",
			body: `{"serialNumber":"SN1","detail":"dock"}`,
			setupMock: func(m *MockAllocationRepository) {
				m.On("PersistAllocation", mock.Anything, mock.MatchedBy(func(req models.AllocationRequest) bool {
					return req.DetailsValue() != nil && *req.DetailsValue() == "dock"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"status": "Success"},
		},
		{
			name:           "missing serial number",
			body:           `{"name":"Jane"}`,
			setupMock:      func(m *MockAllocationRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"status": "Failed", "code": "VALIDATION_ERROR"},
		},
		{
			name:           "blank serial number",
			body:           `{"serialNumber":"   "}`,
			setupMock:      func(m *MockAllocationRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"status": "Failed", "code": "VALIDATION_ERROR"},
		},
		{
			name:           "malformed json",
			body:           `{"serialNumber":`,
			setupMock:      func(m *MockAllocationRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"status": "Failed", "code": "VALIDATION_ERROR"},
		},
		{
			name: "database unavailable",
			body: `{"serialNumber":"SN1"}`,
			setupMock: func(m *MockAllocationRepository) {
				m.On("PersistAllocation", mock.Anything, mock.Anything).
					Return(custom_error.New(custom_error.KindConnectionFailure, "add resource allocation", errors.New("connection refused")))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   map[string]interface{}{"status": "Failed", "code": "CONNECTION_FAILURE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAllocationRepository)
			tt.setupMock(mockRepo)

			w := postJSON(setupRouter(mockRepo), "/addResourceAllocation", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decode(t, w))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetResourceAllocation(t *testing.T) {
	mockRepo := new(MockAllocationRepository)
	mockRepo.On("FindByAssignee", mock.Anything, "Jane", "jane@x.com").
		Return([]models.Allocation{{Name: strPtr("Jane"), SerialNumber: strPtr("SN1")}}, nil)
	mockRepo.On("FindByAssignee", mock.Anything, "Nobody", "nobody@x.com").
		Return([]models.Allocation{}, nil)
	router := setupRouter(mockRepo)

	w := postJSON(router, "/getResourceAllocation", `{"name":" Jane ","email":"jane@x.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var allocations []models.Allocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &allocations))
	require.Len(t, allocations, 1)
	assert.Equal(t, "SN1", *allocations[0].SerialNumber)

	w = postJSON(router, "/getResourceAllocation", `{"name":"Nobody","email":"nobody@x.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = postJSON(router, "/getResourceAllocation", `{"name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed", decode(t, w)["status"])

	mockRepo.AssertExpectations(t)
}

func TestGetSerialnumberAllocation(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", custom_error.NotFound("op", "missing"), http.StatusNotFound, "NOT_FOUND"},
		{"ambiguous", custom_error.Conflict("op", "twice"), http.StatusConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAllocationRepository)
			mockRepo.On("FindBySerialNumber", mock.Anything, "sn1").Return(nil, tt.err)

			w := postJSON(setupRouter(mockRepo), "/getSerialnumberAllocation", `{"serialnumber":"sn1"}`)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, map[string]interface{}{"status": "Failed", "code": tt.expectedCode}, decode(t, w))
		})
	}
}

func TestUpdateResourceAllocation(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
	}{
		{"existing allocation", 1},
		// an unknown serial number is still reported as success
		{"unknown serial number", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAllocationRepository)
			mockRepo.On("UpdateAllocation", mock.Anything, mock.MatchedBy(func(req models.UpdateAllocationRequest) bool {
				return req.SerialNumber == "SN1" && *req.CostCenter == "CC2" && *req.DetailsValue() == "dock"
			})).Return(tt.rowsAffected, nil)

			w := postJSON(setupRouter(mockRepo), "/updateResourceAllocation",
				`{"serialnumber":" SN1 ","name":"John","allocation_date":"2024-02-01","cost_center":"CC2","location":"Pune","email":"john@x.com","detail":"dock"}`)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, map[string]interface{}{"status": "Success"}, decode(t, w))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateResourceAllocationRequiresName(t *testing.T) {
	mockRepo := new(MockAllocationRepository)

	w := postJSON(setupRouter(mockRepo), "/updateResourceAllocation", `{"serialnumber":"SN1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]interface{}{"status": "Failed", "code": "VALIDATION_ERROR"}, decode(t, w))
	mockRepo.AssertNotCalled(t, "UpdateAllocation", mock.Anything, mock.Anything)
}

func TestDeleteResources(t *testing.T) {
	mockRepo := new(MockAllocationRepository)
	mockRepo.On("DeleteAllocation", mock.Anything, "SN1").Return(int64(1), nil)
	mockRepo.On("DeleteAllocation", mock.Anything, "SN2").Return(int64(0), errors.New("boom"))
	router := setupRouter(mockRepo)

	w := postJSON(router, "/deleteResources", `{"serialnumber":"SN1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Success", decode(t, w)["status"])

	w = postJSON(router, "/deleteResources", `{"serialnumber":"SN2"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed", decode(t, w)["status"])

	mockRepo.AssertExpectations(t)
}

func TestAllocationLifecycleAgainstDatabase(t *testing.T) {
	router := setupRouter(NewRepository(repositorytest.NewRepository(t)))

	w := postJSON(router, "/addResourceAllocation",
		`{"name":"Jane","serialNumber":"SN1","allocationDate":"2024-01-01","po":"CC1","location":"HQ","email":"jane@x.com","details":"laptop"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Success"}`, w.Body.String())

	w = postJSON(router, "/getSerialnumberAllocation", `{"serialnumber":"sn1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "Jane",
		"service_tag_number": "SN1",
		"allocation_date": "2024-01-01",
		"cost_center": "CC1",
		"location": "HQ",
		"email": "jane@x.com",
		"details": "laptop"
	}`, w.Body.String())

	w = postJSON(router, "/getResourceAllocation", `{"name":"JANE","email":"Jane@X.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var allocations []models.Allocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &allocations))
	assert.Len(t, allocations, 1)

	w = postJSON(router, "/addResourceAllocation", `{"name":"Raj","serialNumber":"SN2","detail":"dock"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/getSerialnumberAllocation", `{"serialnumber":"SN2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dock", decode(t, w)["details"])

	w = postJSON(router, "/updateResourceAllocation", `{"serialnumber":"SN2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/getSerialnumberAllocation", `{"serialnumber":"SN2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Raj", decode(t, w)["name"])
	assert.Equal(t, "dock", decode(t, w)["details"])

	w = postJSON(router, "/updateResourceAllocation", `{"serialnumber":"SN404","name":"Ghost"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Success"}`, w.Body.String())

	w = postJSON(router, "/deleteResources", `{"serialnumber":"SN1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/getSerialnumberAllocation", `{"serialnumber":"sn1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"Failed","code":"NOT_FOUND"}`, w.Body.String())
}
