package usecase

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
	"finflix/infrastructure/metrics"
)

type ICollectionUsecase interface {
	Add(ctx context.Context, userID string, kind model.CollectionKind, videoID string) ([]model.VideoView, error)
	Remove(ctx context.Context, userID string, kind model.CollectionKind, videoID string) ([]model.VideoView, error)
	List(ctx context.Context, userID string, kind model.CollectionKind) ([]model.VideoView, error)
	ClearHistory(ctx context.Context, userID string) error
}

type collectionUsecase struct {
	userRepo  repository.IUser
	videoRepo repository.IVideo
	resolver  *videoResolver
}

func NewCollectionUsecase(
	userRepo repository.IUser,
	videoRepo repository.IVideo,
	creatorRepo repository.ICreator,
	categoryRepo repository.ICategory,
) ICollectionUsecase {
	return &collectionUsecase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
		resolver:  newVideoResolver(videoRepo, creatorRepo, categoryRepo),
	}
}

var collectionMessages = map[model.CollectionKind]struct {
	duplicate string
	absent    string
}{
	model.CollectionLiked:      {duplicate: "Video already liked by the user", absent: "User didn't like the video"},
	model.CollectionWatchLater: {duplicate: "Video already in watch later", absent: "Video is not in watch later"},
	model.CollectionHistory:    {absent: "Video is not in history"},
}

func (u *collectionUsecase) Add(ctx context.Context, userID string, kind model.CollectionKind, videoID string) ([]model.VideoView, error) {
	user, err := u.loadUserAndVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	refs := user.Refs(kind)
	if kind == model.CollectionHistory {
		refs = moveToFront(refs, videoID)
	} else {
		var added bool
		refs, added = appendUnique(refs, videoID)
		if !added {
			metrics.CollectionMutationsTotal.WithLabelValues(string(kind), metrics.MutationAdd, metrics.ResultRejected).Inc()
			return nil, Conflict(collectionMessages[kind].duplicate)
		}
	}
	return u.save(ctx, user, kind, refs, metrics.MutationAdd)
}

func (u *collectionUsecase) Remove(ctx context.Context, userID string, kind model.CollectionKind, videoID string) ([]model.VideoView, error) {
	user, err := u.loadUserAndVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	refs, removed := removeRef(user.Refs(kind), videoID)
	if !removed {
		metrics.CollectionMutationsTotal.WithLabelValues(string(kind), metrics.MutationRemove, metrics.ResultRejected).Inc()
		return nil, InvalidState(collectionMessages[kind].absent)
	}
	return u.save(ctx, user, kind, refs, metrics.MutationRemove)
}

func (u *collectionUsecase) List(ctx context.Context, userID string, kind model.CollectionKind) ([]model.VideoView, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.project(ctx, user.Refs(kind))
}

func (u *collectionUsecase) ClearHistory(ctx context.Context, userID string) error {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	_, err = u.save(ctx, user, model.CollectionHistory, []string{}, metrics.MutationClear)
	return err
}

func (u *collectionUsecase) save(ctx context.Context, user model.User, kind model.CollectionKind, refs []string, op string) ([]model.VideoView, error) {
	user.SetRefs(kind, refs)
	updated, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		metrics.CollectionMutationsTotal.WithLabelValues(string(kind), op, metrics.ResultError).Inc()
		logger.GetLogger().
			WithField("error", err).
			WithField("user_id", user.ID).
			WithField("collection", kind).
			Error("Error while saving user collection")
		return nil, writeErr(err)
	}
	metrics.CollectionMutationsTotal.WithLabelValues(string(kind), op, metrics.ResultOK).Inc()
	return u.project(ctx, updated.Refs(kind))
}

func (u *collectionUsecase) project(ctx context.Context, refs []string) ([]model.VideoView, error) {
	resolved, err := u.resolver.Resolve(ctx, refs)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while resolving videos")
		return nil, Internal(err)
	}
	return FormatVideos(resolved), nil
}

func (u *collectionUsecase) loadUser(ctx context.Context, userID string) (model.User, error) {
	if !model.IsValidID(userID) {
		return model.User{}, Validation("Invalid user id")
	}
	user, err := u.userRepo.GetById(ctx, userID)
	if err != nil {
		return model.User{}, lookupErr(err, "User not found")
	}
	return user, nil
}

func (u *collectionUsecase) loadUserAndVideo(ctx context.Context, userID, videoID string) (model.User, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if _, err := u.videoRepo.GetById(ctx, videoID); err != nil {
		return model.User{}, lookupErr(err, "Video not found")
	}
	return user, nil
}
