package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cricket-booking/config"
	"cricket-booking/internal/module/booking/models/entity"
	"cricket-booking/internal/module/booking/models/response"
	"cricket-booking/internal/pkg/errors"
	"cricket-booking/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db             *sqlx.DB
	log            *otelzap.Logger
	httpClient     *circuit.HTTPClient
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	cfgUserService *config.UserServiceConfig
	flowTTL        time.Duration
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// db
	FindSectionByID(ctx context.Context, sectionID int64) (entity.Section, error)
	FindSectionsByMatchID(ctx context.Context, matchID int64) ([]entity.Section, error)
	InsertPaymentClaim(ctx context.Context, claim *entity.PaymentClaim) error
	CountPaymentClaimsByUTR(ctx context.Context, utrNumber string) (int64, error)
	MarkClaimReconciled(ctx context.Context, utrNumber string) error
	FlagClaimUnreconciled(ctx context.Context, utrNumber string) error
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByUTR(ctx context.Context, utrNumber string) (entity.Booking, bool, error)
	DecrementSectionAvailability(ctx context.Context, sectionID int64, seats int) error
	// redis
	GetSectionStock(ctx context.Context, sectionID int64) (int64, error)
	RefreshSectionStock(ctx context.Context, sectionID int64, available int) error
	DecrementSectionStock(ctx context.Context, sectionID int64, seats int) error
	SaveFlow(ctx context.Context, flow *entity.Flow) error
	FindFlowByID(ctx context.Context, flowID string) (entity.Flow, error)
	// scheduler
	EnqueueClaimReconciliation(ctx context.Context, utrNumber string, delay time.Duration) (string, error)
}

func New(
	db *sqlx.DB,
	log *otelzap.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redis.Client,
	asynqClient *asynq.Client,
	cfgUserService *config.UserServiceConfig,
	flowTTL time.Duration,
) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		httpClient:     httpClient,
		redisClient:    redisClient,
		asynqClient:    asynqClient,
		cfgUserService: cfgUserService,
		flowTTL:        flowTTL,
	}
}

// FindSectionByID implements Repositories.
func (r *repositories) FindSectionByID(ctx context.Context, sectionID int64) (entity.Section, error) {
	query := `SELECT id, match_id, name, category, price, available, capacity, created_at, updated_at FROM section WHERE id = $1`
	var section entity.Section
	err := r.db.GetContext(ctx, &section, query, sectionID)
	if err == sql.ErrNoRows {
		return entity.Section{}, errors.NotFound("section not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find section by id: %v", err))
		return entity.Section{}, errors.InternalServerError("error find section by id")
	}
	return section, nil
}

// FindSectionsByMatchID implements Repositories.
func (r *repositories) FindSectionsByMatchID(ctx context.Context, matchID int64) ([]entity.Section, error) {
	query := `SELECT id, match_id, name, category, price, available, capacity, created_at, updated_at FROM section WHERE match_id = $1 ORDER BY price DESC`
	sections := make([]entity.Section, 0)
	if err := r.db.SelectContext(ctx, &sections, query, matchID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find sections by match id: %v", err))
		return nil, errors.InternalServerError("error find sections by match id")
	}
	return sections, nil
}

// InsertPaymentClaim implements Repositories. The insert is unconditional:
// no duplicate check, no proof the transfer happened.
func (r *repositories) InsertPaymentClaim(ctx context.Context, claim *entity.PaymentClaim) error {
	query := `
		INSERT INTO payment_claim (match_id, user_email, amount, utr_number, claimed_at)
		VALUES (:match_id, :user_email, :amount, :utr_number, :claimed_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, claim); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert payment claim: %v", err))
		return errors.InternalServerError("error insert payment claim")
	}
	return nil
}

// CountPaymentClaimsByUTR implements Repositories.
func (r *repositories) CountPaymentClaimsByUTR(ctx context.Context, utrNumber string) (int64, error) {
	query := `SELECT count(id) FROM payment_claim WHERE utr_number = $1`
	var count int64
	if err := r.db.GetContext(ctx, &count, query, utrNumber); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error count payment claims by utr: %v", err))
		return 0, errors.InternalServerError("error count payment claims by utr")
	}
	return count, nil
}

// MarkClaimReconciled implements Repositories.
func (r *repositories) MarkClaimReconciled(ctx context.Context, utrNumber string) error {
	query := `UPDATE payment_claim SET reconciled_at = now() WHERE utr_number = $1 AND reconciled_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, utrNumber); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error mark claim reconciled: %v", err))
		return errors.InternalServerError("error mark claim reconciled")
	}
	return nil
}

// FlagClaimUnreconciled implements Repositories.
func (r *repositories) FlagClaimUnreconciled(ctx context.Context, utrNumber string) error {
	query := `UPDATE payment_claim SET flagged_at = now() WHERE utr_number = $1 AND flagged_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, utrNumber); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error flag claim unreconciled: %v", err))
		return errors.InternalServerError("error flag claim unreconciled")
	}
	return nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO booking (id, match_id, section_id, seats, user_email, utr_number, status, created_at)
		VALUES (:id, :match_id, :section_id, :seats, :user_email, :utr_number, :status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert booking: %v", err))
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByUTR implements Repositories. Zero-or-one semantics: the
// second return reports whether a row exists.
func (r *repositories) FindBookingByUTR(ctx context.Context, utrNumber string) (entity.Booking, bool, error) {
	query := `SELECT id, match_id, section_id, seats, user_email, utr_number, status, created_at, updated_at FROM booking WHERE utr_number = $1 LIMIT 1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, utrNumber)
	if err == sql.ErrNoRows {
		return entity.Booking{}, false, nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking by utr: %v", err))
		return entity.Booking{}, false, errors.InternalServerError("error find booking by utr")
	}
	return booking, true, nil
}

// DecrementSectionAvailability implements Repositories. The guard keeps
// available from going negative, but the decrement is still a separate
// statement from the booking insert.
func (r *repositories) DecrementSectionAvailability(ctx context.Context, sectionID int64, seats int) error {
	query := `UPDATE section SET available = available - $1, updated_at = now() WHERE id = $2 AND available >= $1`
	result, err := r.db.ExecContext(ctx, query, seats, sectionID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decrement section availability: %v", err))
		return errors.InternalServerError("error decrement section availability")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decrement section availability: %v", err))
		return errors.InternalServerError("error decrement section availability")
	}
	if affected == 0 {
		return errors.Conflict("section has fewer seats available than requested")
	}
	return nil
}

// GetSectionStock implements Repositories.
func (r *repositories) GetSectionStock(ctx context.Context, sectionID int64) (int64, error) {
	key := fmt.Sprintf("section_stock:%d", sectionID)
	data, err := r.redisClient.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, errors.NotFound("section stock not cached")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error get section stock: %v", err))
		return 0, errors.InternalServerError("error get section stock")
	}
	return data, nil
}

// RefreshSectionStock implements Repositories.
func (r *repositories) RefreshSectionStock(ctx context.Context, sectionID int64, available int) error {
	key := fmt.Sprintf("section_stock:%d", sectionID)
	if err := r.redisClient.Set(ctx, key, available, 0).Err(); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error refresh section stock: %v", err))
		return errors.InternalServerError("error refresh section stock")
	}
	return nil
}

// DecrementSectionStock implements Repositories.
func (r *repositories) DecrementSectionStock(ctx context.Context, sectionID int64, seats int) error {
	key := fmt.Sprintf("section_stock:%d", sectionID)
	if err := r.redisClient.DecrBy(ctx, key, int64(seats)).Err(); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decrement section stock: %v", err))
		return errors.InternalServerError("error decrement section stock")
	}
	return nil
}

// SaveFlow implements Repositories.
func (r *repositories) SaveFlow(ctx context.Context, flow *entity.Flow) error {
	payload, err := json.Marshal(flow)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error marshal booking flow: %v", err))
		return errors.InternalServerError("error save booking flow")
	}

	key := fmt.Sprintf("booking_flow:%s", flow.ID)
	if err := r.redisClient.Set(ctx, key, payload, r.flowTTL).Err(); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error save booking flow: %v", err))
		return errors.InternalServerError("error save booking flow")
	}
	return nil
}

// FindFlowByID implements Repositories.
func (r *repositories) FindFlowByID(ctx context.Context, flowID string) (entity.Flow, error) {
	key := fmt.Sprintf("booking_flow:%s", flowID)
	data, err := r.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return entity.Flow{}, errors.NotFound("booking flow not found or expired")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking flow: %v", err))
		return entity.Flow{}, errors.InternalServerError("error find booking flow")
	}

	var flow entity.Flow
	if err := json.Unmarshal(data, &flow); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal booking flow: %v", err))
		return entity.Flow{}, errors.InternalServerError("error find booking flow")
	}
	return flow, nil
}

// EnqueueClaimReconciliation implements Repositories.
func (r *repositories) EnqueueClaimReconciliation(ctx context.Context, utrNumber string, delay time.Duration) (string, error) {
	payload, err := json.Marshal(map[string]string{"utr_number": utrNumber})
	if err != nil {
		return "", errors.InternalServerError("error marshal reconcile claim task")
	}

	task := asynq.NewTask(scheduler.TypeReconcileClaim, payload)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay))
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue claim reconciliation: %v", err))
		return "", errors.InternalServerError("error enqueue claim reconciliation")
	}
	return info.ID, nil
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Ctx(ctx).Error(fmt.Sprintf("invalid token, user service returned %d", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		return respData, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}
