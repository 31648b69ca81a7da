package models

// RegistrationStats отдаётся админской панели.
type RegistrationStats struct {
	PlayersTotal int `json:"players_total"`
	CoachesTotal int `json:"coaches_total"`

	PoolOpenConns int `json:"pool_open_conns"`
	PoolInUse     int `json:"pool_in_use"`
	PoolIdle      int `json:"pool_idle"`
	PoolWaitCount int `json:"pool_wait_count"`
}
