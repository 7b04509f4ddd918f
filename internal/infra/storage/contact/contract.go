package contact

import "github.com/m04kA/SMC-TintingService/pkg/dbmetrics"

// DBExecutor *sql.DB, *dbmetrics.DB или транзакция
type DBExecutor = dbmetrics.DBExecutor
