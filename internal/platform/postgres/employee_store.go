package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/platform/logger"
	"github.com/gobidev/ems-api/internal/store"
)

// PostgresEmployeeStore implements the store.EmployeeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEmployeeStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresEmployeeStore creates a new PostgreSQL implementation of the
// EmployeeStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresEmployeeStore(db *sql.DB, log *slog.Logger) *PostgresEmployeeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresEmployeeStore{
		db:     db,
		logger: log.With(slog.String("component", "employee_store")),
	}
}

// Ensure PostgresEmployeeStore implements store.EmployeeStore interface
var _ store.EmployeeStore = (*PostgresEmployeeStore)(nil)

// employeeColumns is the select list shared by every employee query, with
// the owned role and account joined in.
const employeeColumns = `
	e.id, e.uuid, e.name, e.dob, e.mobile_number, e.email, e.hashed_password,
	e.type, e.is_deleted, e.created_at, e.updated_at,
	r.id, r.designation, r.department, r.is_deleted,
	a.id, a.account_number, a.bank_name, a.ifsc_code, a.is_deleted
`

const employeeFrom = `
	FROM employees e
	LEFT JOIN roles r ON r.id = e.role_id
	LEFT JOIN accounts a ON a.id = e.account_id
`

// Create implements store.EmployeeStore.Create
// It inserts a registration-stage row: email, credential hash, and
// classification. Returns store.ErrEmailExists on a duplicate active email.
func (s *PostgresEmployeeStore) Create(ctx context.Context, employee *domain.Employee) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := employee.Validate(); err != nil {
		log.Warn("employee validation failed during create",
			slog.String("error", err.Error()),
			slog.String("email", employee.Email))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	query := `
		INSERT INTO employees (uuid, name, dob, mobile_number, email, hashed_password, type, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		nullString(employee.UUID),
		nullString(employee.Name),
		nullTime(employee.DOB),
		nullString(employee.MobileNumber),
		employee.Email,
		employee.HashedPassword,
		string(employee.Type),
		employee.IsDeleted,
		employee.CreatedAt,
		employee.UpdatedAt,
	).Scan(&employee.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate email during employee creation",
				slog.String("email", employee.Email))
			return store.ErrEmailExists
		}
		log.Error("failed to create employee",
			slog.String("error", err.Error()),
			slog.String("email", employee.Email))
		return err
	}

	log.Info("employee created successfully",
		slog.Int("employee_id", employee.ID),
		slog.String("email", employee.Email))
	return nil
}

// GetByID implements store.EmployeeStore.GetByID
// The returned employee has its role, account, and skills hydrated.
func (s *PostgresEmployeeStore) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeFrom + `WHERE e.id = $1 AND e.is_deleted = false`
	return s.getOne(ctx, query, id)
}

// GetByEmail implements store.EmployeeStore.GetByEmail
func (s *PostgresEmployeeStore) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeFrom + `WHERE e.email = $1 AND e.is_deleted = false`
	return s.getOne(ctx, query, email)
}

// FindByEmailAnyState implements store.EmployeeStore.FindByEmailAnyState
// Unlike the other lookups, soft-deleted rows are NOT filtered out here.
// When several rows carry the email the most recent one wins.
func (s *PostgresEmployeeStore) FindByEmailAnyState(
	ctx context.Context,
	email string,
) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeFrom + `WHERE e.email = $1 ORDER BY e.id DESC LIMIT 1`
	return s.getOne(ctx, query, email)
}

// ExistsByEmail implements store.EmployeeStore.ExistsByEmail
func (s *PostgresEmployeeStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND is_deleted = false)`
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		log.Error("failed to check employee existence by email",
			slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// List implements store.EmployeeStore.List
// Pages are zero-based; ordering is the stable insertion order (id).
func (s *PostgresEmployeeStore) List(
	ctx context.Context,
	page, size int,
) ([]*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	query := `SELECT ` + employeeColumns + employeeFrom + `
		WHERE e.is_deleted = false
		ORDER BY e.id
		LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, size, page*size)
	if err != nil {
		log.Error("failed to list employees",
			slog.String("error", err.Error()),
			slog.Int("page", page),
			slog.Int("size", size))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var employees []*domain.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows.Scan)
		if err != nil {
			log.Error("failed to scan employee row",
				slog.String("error", err.Error()))
			return nil, err
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	for _, employee := range employees {
		if err := s.loadSkills(ctx, s.db, employee); err != nil {
			return nil, err
		}
	}

	if employees == nil {
		employees = []*domain.Employee{}
	}
	return employees, nil
}

// Save implements store.EmployeeStore.Save
// The employee row, the owned account's fields, the role attachment, and the
// skill reference set are written inside one transaction, account first.
func (s *PostgresEmployeeStore) Save(ctx context.Context, employee *domain.Employee) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	employee.UpdatedAt = time.Now().UTC()

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if employee.Account != nil && employee.Account.ID != 0 {
			if err := saveAccountRow(ctx, tx, employee.Account); err != nil {
				return err
			}
		}

		query := `
			UPDATE employees
			SET uuid = $1, name = $2, dob = $3, mobile_number = $4, email = $5,
			    hashed_password = $6, type = $7, is_deleted = $8,
			    role_id = $9, account_id = $10, updated_at = $11
			WHERE id = $12
		`
		result, err := tx.ExecContext(
			ctx,
			query,
			nullString(employee.UUID),
			nullString(employee.Name),
			nullTime(employee.DOB),
			nullString(employee.MobileNumber),
			employee.Email,
			employee.HashedPassword,
			string(employee.Type),
			employee.IsDeleted,
			nullID(employee.Role),
			nullAccountID(employee.Account),
			employee.UpdatedAt,
			employee.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return store.ErrEmailExists
			}
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return store.ErrEmployeeNotFound
		}

		return replaceSkillRefs(ctx, tx, employee)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) || errors.Is(err, store.ErrEmailExists) {
			log.Debug("employee save rejected",
				slog.String("error", err.Error()),
				slog.Int("employee_id", employee.ID))
		} else {
			log.Error("failed to save employee",
				slog.String("error", err.Error()),
				slog.Int("employee_id", employee.ID))
		}
		return err
	}

	log.Info("employee saved successfully", slog.Int("employee_id", employee.ID))
	return nil
}

// getOne runs a single-row employee query and hydrates the skill list.
func (s *PostgresEmployeeStore) getOne(
	ctx context.Context,
	query string,
	arg any,
) (*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, query, arg)
	employee, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("employee not found")
			return nil, store.ErrEmployeeNotFound
		}
		log.Error("failed to get employee", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.loadSkills(ctx, s.db, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// loadSkills hydrates the employee's skill references from the join table.
func (s *PostgresEmployeeStore) loadSkills(
	ctx context.Context,
	db store.DBTX,
	employee *domain.Employee,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.id, s.name, s.category, s.institute, s.is_deleted
		FROM skills s
		JOIN employee_skills es ON es.skill_id = s.id
		WHERE es.employee_id = $1
		ORDER BY s.id
	`
	rows, err := db.QueryContext(ctx, query, employee.ID)
	if err != nil {
		log.Error("failed to load employee skills",
			slog.String("error", err.Error()),
			slog.Int("employee_id", employee.ID))
		return err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var skills []*domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Category,
			&skill.Institute,
			&skill.IsDeleted,
		); err != nil {
			return err
		}
		skills = append(skills, &skill)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	employee.Skills = skills
	return nil
}

// scanEmployee scans the employeeColumns select list into a hydrated
// employee, materializing the joined role and account when present.
func scanEmployee(scan func(dest ...any) error) (*domain.Employee, error) {
	var (
		employee     domain.Employee
		empType      string
		uuid         sql.NullString
		name         sql.NullString
		dob          sql.NullTime
		mobile       sql.NullString
		roleID       sql.NullInt64
		designation  sql.NullString
		department   sql.NullString
		roleDeleted  sql.NullBool
		accID        sql.NullInt64
		accNumber    sql.NullString
		bankName     sql.NullString
		ifscCode     sql.NullString
		accDeleted   sql.NullBool
	)

	err := scan(
		&employee.ID, &uuid, &name, &dob, &mobile, &employee.Email,
		&employee.HashedPassword, &empType, &employee.IsDeleted,
		&employee.CreatedAt, &employee.UpdatedAt,
		&roleID, &designation, &department, &roleDeleted,
		&accID, &accNumber, &bankName, &ifscCode, &accDeleted,
	)
	if err != nil {
		return nil, err
	}

	employee.UUID = uuid.String
	employee.Name = name.String
	employee.DOB = dob.Time
	employee.MobileNumber = mobile.String
	employee.Type = domain.EmployeeType(empType)

	if roleID.Valid {
		employee.Role = &domain.Role{
			ID:          int(roleID.Int64),
			Designation: designation.String,
			Department:  department.String,
			IsDeleted:   roleDeleted.Bool,
		}
	}
	if accID.Valid {
		employee.Account = &domain.Account{
			ID:            int(accID.Int64),
			AccountNumber: accNumber.String,
			BankName:      bankName.String,
			IFSCCode:      ifscCode.String,
			IsDeleted:     accDeleted.Bool,
		}
	}

	return &employee, nil
}

// replaceSkillRefs rewrites the employee_skills join set for the employee.
func replaceSkillRefs(ctx context.Context, tx *sql.Tx, employee *domain.Employee) error {
	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM employee_skills WHERE employee_id = $1`,
		employee.ID,
	); err != nil {
		return err
	}

	for _, skill := range employee.Skills {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO employee_skills (employee_id, skill_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			employee.ID,
			skill.ID,
		); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: skill with id %d not found",
					store.ErrInvalidEntity, skill.ID)
			}
			return err
		}
	}
	return nil
}

// saveAccountRow overwrites the account row inside the aggregate save.
func saveAccountRow(ctx context.Context, tx *sql.Tx, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET account_number = $1, bank_name = $2, ifsc_code = $3, is_deleted = $4
		WHERE id = $5
	`
	result, err := tx.ExecContext(
		ctx,
		query,
		account.AccountNumber,
		account.BankName,
		account.IFSCCode,
		account.IsDeleted,
		account.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAccountNotFound
	}
	return nil
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullTime maps a zero time to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// nullID maps a nil role to SQL NULL.
func nullID(role *domain.Role) sql.NullInt64 {
	if role == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(role.ID), Valid: true}
}

// nullAccountID maps a nil account to SQL NULL.
func nullAccountID(account *domain.Account) sql.NullInt64 {
	if account == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(account.ID), Valid: true}
}
