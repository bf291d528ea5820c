package commands

import (
	"fmt"
	"log"

	"workforce/backend/internal/pkg/repository/postgresql"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"account_role\" AS ENUM",
		Query: `
        CREATE TYPE "account_role" AS ENUM ('EMPLOYEE', 'MANAGER', 'ADMIN');`,
	},
	{
		Index:       2,
		Description: "Create table: accounts.",
		Query: `
        CREATE TABLE IF NOT EXISTS accounts (
            id serial primary key,
            employee_id text not null,
            password text not null,
            role account_role,
            first_name text,
            last_name text,
            email varchar(255),
            phone varchar(255),
            profile_image text,
            verified boolean default false,
            archived boolean default false,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create account with employee_id: Admin01, password: 1",
		Query: `
        INSERT INTO accounts(employee_id, role, password, verified)
        SELECT 'Admin01', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2', true
        WHERE NOT EXISTS (SELECT employee_id FROM accounts WHERE employee_id = 'Admin01');
        `,
	},
	{
		Index:       4,
		Description: "Create table: departments",
		Query: `
        CREATE TABLE IF NOT EXISTS departments (
            id serial primary key,
            name text not null,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       5,
		Description: "Alter table accounts: department reference",
		Query: `
        ALTER TABLE accounts
        ADD COLUMN IF NOT EXISTS department_id int references departments(id);`,
	},
	{
		Index:       6,
		Description: "Create table: employments.",
		Query: `
        CREATE TABLE IF NOT EXISTS employments (
            id serial primary key,
            account_id int not null references accounts(id),
            position text,
            rank text,
            department_id int references departments(id),
            employment_type varchar(50),
            hourly_rate numeric(12,2),
            bank_name text,
            bank_account text,
            status varchar(50) default 'ACTIVE',
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: attendances.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendances (
            id SERIAL PRIMARY KEY,
            account_id INT NOT NULL REFERENCES accounts(id),
            work_day DATE NOT NULL,
            time_in TIMESTAMP NOT NULL,
            time_out TIMESTAMP,
            total_hours VARCHAR(20),
            shift VARCHAR(20),
            status VARCHAR(20) DEFAULT 'PENDING',
            time_in_image TEXT,
            time_out_image TEXT,
            forgot_time_out BOOLEAN DEFAULT false,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES accounts(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES accounts(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES accounts(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: action_logs.",
		Query: `
        CREATE TABLE IF NOT EXISTS action_logs (
            id SERIAL PRIMARY KEY,
            attendance_id INT NOT NULL REFERENCES attendances(id),
            account_id INT NOT NULL REFERENCES accounts(id),
            requested_time_in TIMESTAMP,
            requested_time_out TIMESTAMP,
            reason TEXT,
            status VARCHAR(20) DEFAULT 'PENDING',
            decided_by INT REFERENCES accounts(id),
            decided_at TIMESTAMP,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES accounts(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES accounts(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES accounts(id)
        );`,
	},
	{
		Index:       9,
		Description: "Create table: leaves.",
		Query: `
        CREATE TABLE IF NOT EXISTS leaves (
            id SERIAL PRIMARY KEY,
            account_id INT NOT NULL REFERENCES accounts(id),
            type VARCHAR(30) NOT NULL,
            units NUMERIC(5,1) NOT NULL,
            start_date DATE NOT NULL,
            end_date DATE NOT NULL,
            reason TEXT,
            status VARCHAR(20) DEFAULT 'PENDING',
            decided_by INT REFERENCES accounts(id),
            decided_at TIMESTAMP,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES accounts(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES accounts(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES accounts(id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: payslips.",
		Query: `
        CREATE TABLE IF NOT EXISTS payslips (
            id SERIAL PRIMARY KEY,
            account_id INT NOT NULL REFERENCES accounts(id),
            period_start DATE NOT NULL,
            period_end DATE NOT NULL,
            hours_worked NUMERIC(7,2) DEFAULT 0,
            gross_pay NUMERIC(12,2) NOT NULL,
            deductions NUMERIC(12,2) DEFAULT 0,
            net_pay NUMERIC(12,2) NOT NULL,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES accounts(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES accounts(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES accounts(id)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: calendars.",
		Query: `
        CREATE TABLE IF NOT EXISTS calendars (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            start_date DATE NOT NULL,
            end_date DATE NOT NULL,
            color VARCHAR(30),
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES accounts(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES accounts(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES accounts(id)
        );`,
	},
	{
		Index:       12,
		Description: "Create table: company_info.",
		Query: `
        CREATE TABLE IF NOT EXISTS company_info (
            id SERIAL PRIMARY KEY,
            company_name VARCHAR(250) NOT NULL,
            logo TEXT,
            workday_start TIME,
            workday_end TIME,
            late_after TIME,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES accounts(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES accounts(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES accounts(id)
        );`,
	},
	{
		Index:       13,
		Description: "Insert data for table: company_info.",
		Query: `
        INSERT INTO company_info (id, company_name, workday_start, workday_end, late_after, created_by)
        SELECT 1, 'Workforce', '09:00:00', '18:00:00', '09:20:00', 1
        WHERE NOT EXISTS (SELECT id FROM company_info WHERE id = 1);`,
	},
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
