package technologyhandler

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"employability-backend/db"
	technologystore "employability-backend/lib/technology/store"
	technologyapimodels "employability-backend/models/api/technology"
	dbmodels "employability-backend/models/db"
)

type Provider interface {
	FindOrCreate(names []string) (list []dbmodels.Technology, err error)
	List() (list []technologyapimodels.TechnologyView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: technologystore.NewInstance(db.DB),
		cache: gocache.New(10*time.Minute, 20*time.Minute),
	}
}

type impl struct {
	store technologystore.Provider
	cache *gocache.Cache
}

// FindOrCreate - идемпотентный резолвер справочника технологий,
// имена нормализуются к нижнему регистру
func (i impl) FindOrCreate(names []string) ([]dbmodels.Technology, error) {
	normalized := lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = strings.ToLower(strings.TrimSpace(name))
		return name, name != ""
	}))
	result := make([]dbmodels.Technology, 0, len(normalized))
	for _, name := range normalized {
		if value, found := i.cache.Get(name); found {
			result = append(result, value.(dbmodels.Technology))
			continue
		}
		rec, err := i.store.FindByName(name)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка поиска технологии")
		}
		if rec == nil {
			newRec := dbmodels.Technology{Name: name}
			id, err := i.store.Create(newRec)
			if err != nil {
				return nil, errors.Wrap(err, "ошибка создания технологии")
			}
			newRec.ID = id
			rec = &newRec
		}
		i.cache.SetDefault(name, *rec)
		result = append(result, *rec)
	}
	return result, nil
}

func (i impl) List() ([]technologyapimodels.TechnologyView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(rec dbmodels.Technology, _ int) technologyapimodels.TechnologyView {
		return technologyapimodels.TechnologyConvert(rec)
	}), nil
}
