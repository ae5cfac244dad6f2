package pagination

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContextClampsBounds(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		page int
		size int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&size=25", 3, 25},
		{"negative page", "page=-2", 1, 10},
		{"zero size", "size=0", 1, 10},
		{"oversized window", "size=5000", 1, 100},
		{"garbage", "page=abc&size=xyz", 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := FromContext(queryContext(t, tc.raw))
			if q.Page != tc.page || q.Size != tc.size {
				t.Fatalf("got page=%d size=%d, want page=%d size=%d", q.Page, q.Size, tc.page, tc.size)
			}
		})
	}
}

func TestPaginateWindowsAndMetadata(t *testing.T) {
	db, err := database.OpenEphemeral()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	orgID := uuid.New().String()
	for i := 0; i < 7; i++ {
		cs := models.CaseStudyModel{Title: fmt.Sprintf("Case %d", i)}
		cs.OrganizationID = orgID
		if err := db.Create(&cs).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	base := db.Model(&models.CaseStudyModel{}).Where("organization_id = ?", orgID)

	var page []models.CaseStudyModel
	meta, err := Paginate(base.Session(&gorm.Session{}), Query{Page: 2, Size: 3}, &page)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("middle window should hold 3 rows, got %d", len(page))
	}
	if meta.Total != 7 || meta.TotalPage != 3 || !meta.HasNextPage {
		t.Fatalf("unexpected metadata: %+v", meta)
	}

	var last []models.CaseStudyModel
	meta, err = Paginate(base.Session(&gorm.Session{}), Query{Page: 3, Size: 3}, &last)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(last) != 1 || meta.HasNextPage {
		t.Fatalf("final window wrong: rows=%d meta=%+v", len(last), meta)
	}
}
