// file: internals/features/campaigns/campaign/service/space.go
package service

import (
	"context"
	"fmt"

	"khatm_backend/internals/features/campaigns/campaign/model"
	"khatm_backend/internals/features/quran/catalog"
)

// ResolveSpace membangun ContentSpace dari record kampanye.
// Untuk kampanye dua berbasis sumber eksternal (sahifa) pemanggilan pertama
// bisa gagal dengan ErrSourceUnavailable — error itu harus diteruskan ke
// caller SEBELUM cursor disentuh, jangan di-default diam-diam.
func ResolveSpace(ctx context.Context, cat *catalog.Catalog, cmp *model.CampaignModel) (ContentSpace, error) {
	switch cmp.CampaignType {
	case model.CampaignTypeGeneral:
		return FullCycleSpace{
			TotalSurahs: len(catalog.Surahs),
			VerseCount:  catalog.VerseCount,
		}, nil

	case model.CampaignTypeSurah:
		if cmp.CampaignSurahNumber == nil {
			return nil, fmt.Errorf("%w: campaign %s has no surah selector", catalog.ErrUnknownSurah, cmp.CampaignSlug)
		}
		n := *cmp.CampaignSurahNumber
		vc, err := catalog.VerseCount(n)
		if err != nil {
			return nil, err
		}
		return SingleSurahSpace{Number: n, Verses: vc}, nil

	case model.CampaignTypeDua:
		if cmp.CampaignDuaKey == nil {
			return nil, fmt.Errorf("%w: campaign %s has no dua key", catalog.ErrUnknownDevotional, cmp.CampaignSlug)
		}
		total, err := cat.TotalItems(ctx, *cmp.CampaignDuaKey)
		if err != nil {
			return nil, err
		}
		return DevotionalSpace{Total: total}, nil

	default:
		return nil, fmt.Errorf("unknown campaign type %q", cmp.CampaignType)
	}
}

// StoredPosition memetakan kolom cursor kampanye ke Position engine.
func StoredPosition(cmp *model.CampaignModel) Position {
	if cmp.CampaignType == model.CampaignTypeDua {
		return Position{Index: cmp.CampaignCurrentDuaIndex}
	}
	return Position{Surah: cmp.CampaignCurrentSurah, Verse: cmp.CampaignCurrentVerse}
}
