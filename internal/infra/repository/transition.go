package repository

import (
	"context"

	"auction-engine/internal/infra"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

const noPendingRequests = "NOT EXISTS (SELECT 1 FROM bid_requests br WHERE br.auction_id = auctions.id AND br.status = 'pending')"

// TransitionRepository builds the scheduler's bulk status updates. The
// predicates vary per transition so the statements are assembled with
// squirrel instead of being fixed sqlc queries.
type TransitionRepository struct {
	builder sq.StatementBuilderType
}

func NewTransitionRepository() *TransitionRepository {
	return &TransitionRepository{
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Candidates lists ids that currently satisfy spec without moving them.
func (r *TransitionRepository) Candidates(ctx context.Context, db sqlc.DBTX, spec shared.TransitionSpec) ([]int64, error) {
	if spec.IDs != nil && len(spec.IDs) == 0 {
		return nil, nil
	}
	query, args, err := r.builder.
		Select("id").
		From("auctions").
		Where(predicates(spec)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build candidate query", err, infra.KindDBFailure)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query transition candidates", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidates", err)
	}
	return ids, nil
}

// Transition moves every matching row from spec.From to spec.To and returns
// the rows it actually changed.
func (r *TransitionRepository) Transition(ctx context.Context, db sqlc.DBTX, spec shared.TransitionSpec) ([]shared.TransitionedAuction, error) {
	if spec.IDs != nil && len(spec.IDs) == 0 {
		return nil, nil
	}
	query, args, err := r.transitionSQL(spec)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build transition query", err, infra.KindDBFailure)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to transition auctions", err)
	}
	defer rows.Close()

	var moved []shared.TransitionedAuction
	for rows.Next() {
		var (
			t       shared.TransitionedAuction
			deposit pgtype.Numeric
		)
		if err := rows.Scan(&t.ID, &t.SellerID, &deposit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transitioned auction", err)
		}
		t.Deposit = pgconv.MustDecimal(deposit)
		moved = append(moved, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transitioned auctions", err)
	}
	return moved, nil
}

func (r *TransitionRepository) transitionSQL(spec shared.TransitionSpec) (string, []any, error) {
	update := r.builder.
		Update("auctions").
		Set("status", spec.To.String()).
		Set("updated_at", spec.Now)
	if spec.SetStartAt {
		update = update.Set("start_at", sq.Expr("COALESCE(start_at, ?)", spec.Now))
	}
	if spec.SettleDeposit {
		update = update.Set("deposit_settled", true)
	}
	return update.
		Where(predicates(spec)).
		Suffix("RETURNING id, seller_id, deposit").
		ToSql()
}

func predicates(spec shared.TransitionSpec) sq.And {
	where := sq.And{sq.Eq{"status": spec.From.String()}}
	if spec.StartedBy {
		where = append(where, sq.Or{
			sq.Eq{"start_at": nil},
			sq.LtOrEq{"start_at": spec.Now},
		})
	}
	if !spec.CreatedBefore.IsZero() {
		where = append(where, sq.LtOrEq{"created_at": spec.CreatedBefore})
	}
	if !spec.EndedBefore.IsZero() {
		where = append(where, sq.LtOrEq{"end_at": spec.EndedBefore})
	}
	if spec.NoPending {
		where = append(where, sq.Expr(noPendingRequests))
	}
	if spec.IDs != nil {
		where = append(where, sq.Eq{"id": spec.IDs})
	}
	return where
}
