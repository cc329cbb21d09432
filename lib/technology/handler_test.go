package technologyhandler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employability-backend/db"
	dbmodels "employability-backend/models/db"
)

func setupTest(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.DB = conn
	require.NoError(t, db.AutoMigrateDB())
	NewHandler()
}

func TestFindOrCreate(t *testing.T) {
	t.Run(`имена нормализуются, дубли и пустые строки отбрасываются`, func(t *testing.T) {
		setupTest(t)
		list, err := Instance.FindOrCreate([]string{"Go", " go ", "PostgreSQL", "", "  "})
		require.NoError(t, err)
		names := make([]string, 0, len(list))
		for _, rec := range list {
			names = append(names, rec.Name)
		}
		require.ElementsMatch(t, []string{"go", "postgresql"}, names)
	})

	t.Run(`повторный вызов не плодит записи`, func(t *testing.T) {
		setupTest(t)
		first, err := Instance.FindOrCreate([]string{"go"})
		require.NoError(t, err)
		second, err := Instance.FindOrCreate([]string{"GO"})
		require.NoError(t, err)
		require.Equal(t, first[0].ID, second[0].ID)

		var count int64
		require.NoError(t, db.DB.Model(&dbmodels.Technology{}).Count(&count).Error)
		require.EqualValues(t, 1, count)
	})
}

func TestList(t *testing.T) {
	t.Run(`справочник отдается по алфавиту`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.FindOrCreate([]string{"postgresql", "go", "kotlin"})
		require.NoError(t, err)

		list, err := Instance.List()
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "go", list[0].Name)
		require.Equal(t, "kotlin", list[1].Name)
		require.Equal(t, "postgresql", list[2].Name)
	})
}
