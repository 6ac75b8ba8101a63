package fixture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront.GO/model/payload"
	fixtureRepo "storefront.GO/model/repository/fixture"
	"storefront.GO/service/catalogapi"
)

func newRepo(t *testing.T) *fixtureRepo.FixtureRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	return fixtureRepo.NewFixtureRepository(db)
}

func TestImportArray(t *testing.T) {
	repo := newRepo(t)
	in := `[{"code":"a","name":"A"},{"name":"kodsuz"},{"code":"b"}]`
	res, err := ImportProducts(repo, strings.NewReader(in), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Total != 3 || res.Imported != 2 || res.Skipped != 1 || len(res.Warnings) != 1 {
		t.Errorf("result = %+v", res)
	}
	if n, _ := repo.Count(); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestImportSearchResponse(t *testing.T) {
	repo := newRepo(t)
	in := `{"products":[{"code":"x"}],"pagination":{"totalResults":1}}`
	res, err := ImportProducts(repo, strings.NewReader(in), ImportOptions{Replace: true})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Imported != 1 {
		t.Errorf("Imported = %d, want 1", res.Imported)
	}
}

func TestImportInvalidJSON(t *testing.T) {
	if _, err := ImportProducts(newRepo(t), strings.NewReader(`{"products":`), ImportOptions{}); err == nil {
		t.Error("want decode error")
	}
}

func TestRecord(t *testing.T) {
	e := echo.New()
	e.GET("/products/search", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("currentPage"))
		return c.JSON(http.StatusOK, payload.SearchResponse{
			Products:   []map[string]interface{}{{"code": "p" + strconv.Itoa(page)}},
			Pagination: payload.Pagination{CurrentPage: page, PageSize: 1, TotalPages: 2, TotalResults: 2},
		})
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	repo := newRepo(t)
	res, err := Record(context.Background(), catalogapi.NewClient(srv.URL), repo, RecordOptions{PageSize: 1, MaxPages: 5})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if res.Pages != 2 || res.Imported != 2 {
		t.Errorf("result = %+v", res)
	}
	all, _ := repo.FindAll()
	if len(all) != 2 || all[0].Code != "p0" || all[0].Origin != "record" {
		t.Errorf("stored = %+v", all)
	}
}
