package normalize

import (
	"sort"
	"strings"

	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/models"
)

// firstString - первая непустая (после TrimSpace) строка.
func firstString(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}

// firstInt - первое заданное значение.
func firstInt(vals ...profileapi.FlexInt) (int64, bool) {
	for _, v := range vals {
		if v.Set {
			return v.Value, true
		}
	}

	return 0, false
}

func firstIntOr(def int64, vals ...profileapi.FlexInt) int64 {
	if v, ok := firstInt(vals...); ok {
		return v
	}

	return def
}

func firstBoolOr(def bool, vals ...profileapi.FlexBool) bool {
	for _, v := range vals {
		if v.Set {
			return v.Value
		}
	}

	return def
}

func sortGroups(groups []models.SkillGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Category) < strings.ToLower(groups[j].Category)
	})
}
