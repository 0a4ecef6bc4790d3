package redisstore

import "auction-engine/internal/pkg/errs"

func cacheErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrCacheOperationFailed)
}
