package fixture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gorm.io/datatypes"

	fixtureEntity "storefront.GO/model/entity/fixture"
	fixtureRepo "storefront.GO/model/repository/fixture"
	"storefront.GO/service/catalogapi"
)

// ImportOptions configures an import or record run.
type ImportOptions struct {
	BatchSize int
	Replace   bool // empty the table first
}

// ImportResult holds counters and timing from a run.
type ImportResult struct {
	Total     int
	Imported  int
	Skipped   int
	Pages     int
	Warnings  []string
	FetchTime time.Duration
	DBTime    time.Duration
	TotalTime time.Duration
}

// ImportProducts reads raw search API products from r and stores them. The
// input is either a JSON array of products or a search response object with a
// "products" field.
func ImportProducts(repo *fixtureRepo.FixtureRepository, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fixture: read input: %w", err)
	}
	raws, err := decodeProducts(data)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	rows := toRows(raws, fixtureEntity.OriginImport, 0, res)
	if err := store(repo, rows, opts, res); err != nil {
		return nil, err
	}
	res.TotalTime = time.Since(start)
	return res, nil
}

func decodeProducts(data []byte) ([]map[string]interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var list []map[string]interface{}
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("fixture: decode product array: %w", err)
		}
		return list, nil
	}
	var wrapped struct {
		Products []map[string]interface{} `json:"products"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("fixture: decode search response: %w", err)
	}
	return wrapped.Products, nil
}

func toRows(raws []map[string]interface{}, origin string, offset int, res *ImportResult) []fixtureEntity.FixtureProduct {
	rows := make([]fixtureEntity.FixtureProduct, 0, len(raws))
	for i, raw := range raws {
		res.Total++
		code, _ := raw["code"].(string)
		if code == "" {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("product #%d has no code", offset+i+1))
			continue
		}
		body, err := json.Marshal(raw)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("product %s: %v", code, err))
			continue
		}
		name, _ := raw["name"].(string)
		rows = append(rows, fixtureEntity.FixtureProduct{
			Code:       code,
			Name:       name,
			Payload:    datatypes.JSON(body),
			Origin:     origin,
			Position:   offset + i,
			RecordedAt: time.Now(),
		})
	}
	return rows
}

func store(repo *fixtureRepo.FixtureRepository, rows []fixtureEntity.FixtureProduct, opts ImportOptions, res *ImportResult) error {
	dbStart := time.Now()
	defer func() { res.DBTime += time.Since(dbStart) }()
	if err := repo.AutoMigrate(); err != nil {
		return fmt.Errorf("fixture: migrate: %w", err)
	}
	if opts.Replace {
		if err := repo.DeleteAll(); err != nil {
			return fmt.Errorf("fixture: clear: %w", err)
		}
	}
	if err := repo.Upsert(rows, opts.BatchSize); err != nil {
		return fmt.Errorf("fixture: upsert: %w", err)
	}
	res.Imported += len(rows)
	return nil
}

// RecordOptions selects the listing pages to capture.
type RecordOptions struct {
	ImportOptions
	Query    string
	PageSize int
	MaxPages int
}

// Record pages through a live search and stores every product it returns.
func Record(ctx context.Context, src catalogapi.Source, repo *fixtureRepo.FixtureRepository, opts RecordOptions) (*ImportResult, error) {
	start := time.Now()
	if opts.PageSize <= 0 {
		opts.PageSize = 24
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}
	if opts.Query == "" {
		opts.Query = "relevance"
	}

	res := &ImportResult{}
	var rows []fixtureEntity.FixtureProduct
	for page := 0; page < opts.MaxPages; page++ {
		fetchStart := time.Now()
		resp, err := src.Search(ctx, catalogapi.SearchRequest{Query: opts.Query, CurrentPage: page, PageSize: opts.PageSize})
		res.FetchTime += time.Since(fetchStart)
		if err != nil {
			return nil, fmt.Errorf("fixture: record page %d: %w", page, err)
		}
		res.Pages++
		rows = append(rows, toRows(resp.Products, fixtureEntity.OriginRecord, page*opts.PageSize, res)...)
		if page+1 >= resp.Pagination.TotalPages {
			break
		}
	}
	if err := store(repo, rows, opts.ImportOptions, res); err != nil {
		return nil, err
	}
	res.TotalTime = time.Since(start)
	return res, nil
}
