package usecase

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
)

// FormatVideo projects a resolved video into the shape returned to clients.
func FormatVideo(rv model.ResolvedVideo) model.VideoView {
	return model.VideoView{
		ID:            rv.Video.ID,
		Title:         rv.Video.Title,
		Creator:       rv.Creator.Name,
		CreatorImgURL: rv.Creator.ImgURL,
		Description:   rv.Video.Description,
		Duration:      rv.Video.Duration,
		Category:      rv.Category.Name,
	}
}

// FormatVideos projects every video, keeping input order and length.
func FormatVideos(videos []model.ResolvedVideo) []model.VideoView {
	views := make([]model.VideoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, FormatVideo(v))
	}
	return views
}

// OrderByReference lays out the result of a bulk lookup in the order of
// refs. Bulk lookups do not preserve input order, so every list endpoint
// must pass through here before projecting. References that were not
// resolved are dropped.
func OrderByReference(refs []string, videos []model.ResolvedVideo) []model.ResolvedVideo {
	byID := make(map[string]model.ResolvedVideo, len(videos))
	for _, v := range videos {
		byID[v.Video.ID] = v
	}
	ordered := make([]model.ResolvedVideo, 0, len(refs))
	for _, ref := range refs {
		if v, ok := byID[ref]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered
}

// videoResolver turns video references into resolved videos with their
// creator and category, in three bulk lookups.
type videoResolver struct {
	videoRepo    repository.IVideo
	creatorRepo  repository.ICreator
	categoryRepo repository.ICategory
}

func newVideoResolver(videoRepo repository.IVideo, creatorRepo repository.ICreator, categoryRepo repository.ICategory) *videoResolver {
	return &videoResolver{videoRepo: videoRepo, creatorRepo: creatorRepo, categoryRepo: categoryRepo}
}

// Resolve fetches the referenced videos and returns them in reference order.
func (r *videoResolver) Resolve(ctx context.Context, refs []string) ([]model.ResolvedVideo, error) {
	if len(refs) == 0 {
		return []model.ResolvedVideo{}, nil
	}
	videos, err := r.videoRepo.GetByIds(ctx, unique(refs))
	if err != nil {
		return nil, err
	}
	resolved, err := r.attach(ctx, videos)
	if err != nil {
		return nil, err
	}
	ordered := OrderByReference(refs, resolved)
	if len(ordered) != len(refs) {
		logger.GetLogger().
			WithField("requested", len(refs)).
			WithField("resolved", len(ordered)).
			Warn("dangling video references skipped")
	}
	return ordered, nil
}

// ResolveVideos attaches creators and categories to videos already loaded,
// keeping their order.
func (r *videoResolver) ResolveVideos(ctx context.Context, videos []model.Video) ([]model.ResolvedVideo, error) {
	return r.attach(ctx, videos)
}

func (r *videoResolver) attach(ctx context.Context, videos []model.Video) ([]model.ResolvedVideo, error) {
	creatorIDs := make([]string, 0, len(videos))
	categoryIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		creatorIDs = append(creatorIDs, v.CreatorID)
		categoryIDs = append(categoryIDs, v.CategoryID)
	}

	creators, err := r.creatorRepo.GetByIds(ctx, unique(creatorIDs))
	if err != nil {
		return nil, err
	}
	categories, err := r.categoryRepo.GetByIds(ctx, unique(categoryIDs))
	if err != nil {
		return nil, err
	}
	creatorByID := make(map[string]model.Creator, len(creators))
	for _, c := range creators {
		creatorByID[c.ID] = c
	}
	categoryByID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	resolved := make([]model.ResolvedVideo, 0, len(videos))
	for _, v := range videos {
		creator, okCreator := creatorByID[v.CreatorID]
		category, okCategory := categoryByID[v.CategoryID]
		if !okCreator || !okCategory {
			logger.GetLogger().WithField("video_id", v.ID).Warn("video references a missing creator or category")
			continue
		}
		resolved = append(resolved, model.ResolvedVideo{Video: v, Creator: creator, Category: category})
	}
	return resolved, nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
