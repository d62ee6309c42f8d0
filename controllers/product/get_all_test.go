package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func listRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	return r
}

func getProducts(r *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

func emptyProductRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "brand", "price", "rating", "category", "stock", "source"})
}

func TestGetProductsLowercasesSortOrder(t *testing.T) {
	db, mock := mockDB(t)

	// an upper-cased order param must not fall back to desc
	mock.ExpectQuery(`ORDER BY price asc`).WillReturnRows(emptyProductRows())

	w := getProducts(listRouter(db), "?sort_by=price&order=ASC")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductsWhitelistsSortColumn(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`ORDER BY created_at desc`).WillReturnRows(emptyProductRows())

	w := getProducts(listRouter(db), "?sort_by=price;drop+table+products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductsRejectsInvalidPriceBounds(t *testing.T) {
	db, mock := mockDB(t)
	r := listRouter(db)

	w := getProducts(r, "?min_price=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getProducts(r, "?max_price=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
