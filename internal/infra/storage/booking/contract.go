package booking

import "github.com/m04kA/PH-BookingBot/pkg/txmanager"

// DBExecutor интерфейс для работы с БД, поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor
