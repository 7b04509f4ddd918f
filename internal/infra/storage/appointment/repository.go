package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TintingService/pkg/psqlbuilder"
)

const table = "appointments"

// foreignKeyViolation код ошибки PostgreSQL 23503
const foreignKeyViolation = pq.ErrorCode("23503")

var columns = []string{
	"id",
	"contact_id",
	"vehicle",
	"services",
	"status",
	"start_date",
	"end_date",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей на обслуживание
// Автомобиль и услуги хранятся в JSONB колонках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись, заполняя ID и временные метки
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	vehicle, services, err := encodeJSONB(a)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("contact_id", "vehicle", "services", "status", "start_date", "end_date", "notes").
		Values(a.ContactID, vehicle, services, string(a.Status), a.StartDate, a.EndDate, a.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if isForeignKeyViolation(err) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до конца частичного обновления
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// List возвращает страницу записей (новые первыми) и общее количество подходящих под фильтр
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"start_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		where = append(where, squirrel.LtOrEq{"end_date": *filter.EndDate})
	}
	if filter.Search != "" {
		where = append(where, squirrel.ILike{"notes": psqlbuilder.Contains(filter.Search)})
	}

	countBuilder := psqlbuilder.Select("COUNT(*)").From(table)
	selectBuilder := psqlbuilder.Select(columns...).From(table)
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
		selectBuilder = selectBuilder.Where(where)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute count: %v", ErrExecQuery, err)
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(domain.Offset(filter.Page, filter.Limit))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0, filter.Limit)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, total, nil
}

// Update перезаписывает изменяемые поля записи
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	vehicle, services, err := encodeJSONB(a)
	if err != nil {
		return nil, fmt.Errorf("%w: Update: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("contact_id", a.ContactID).
		Set("vehicle", vehicle).
		Set("services", services).
		Set("status", string(a.Status)).
		Set("start_date", a.StartDate).
		Set("end_date", a.EndDate).
		Set("notes", a.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if isForeignKeyViolation(err) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// encodeJSONB сериализует JSONB поля; lib/pq передаёт строку как text, которую PostgreSQL приводит к jsonb
func encodeJSONB(a *domain.Appointment) (string, string, error) {
	vehicle, err := json.Marshal(a.Vehicle)
	if err != nil {
		return "", "", err
	}

	services := a.Services
	if services == nil {
		services = []domain.AppointmentService{}
	}
	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return "", "", err
	}

	return string(vehicle), string(servicesJSON), nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a        domain.Appointment
		vehicle  []byte
		services []byte
		status   string
		endDate  sql.NullTime
		notes    sql.NullString
	)

	err := row.Scan(
		&a.ID,
		&a.ContactID,
		&vehicle,
		&services,
		&status,
		&a.StartDate,
		&endDate,
		&notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(vehicle, &a.Vehicle); err != nil {
		return nil, fmt.Errorf("decode vehicle: %w", err)
	}
	if err := json.Unmarshal(services, &a.Services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}

	a.Status = domain.AppointmentStatus(status)
	if endDate.Valid {
		a.EndDate = &endDate.Time
	}
	if notes.Valid {
		a.Notes = &notes.String
	}

	return &a, nil
}
