package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool
	// KioskEmployeeID is the seeded employee the kiosk places orders as.
	KioskEmployeeID uint
	// TaxRate applied to kiosk/cashier orders (e.g. 0.0825).
	TaxRate float64
	// MediaDir is where menu-board item photos are stored.
	MediaDir string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		kioskID := uint(9999)
		if v, err := strconv.ParseUint(os.Getenv("KIOSK_EMPLOYEE_ID"), 10, 32); err == nil && v > 0 {
			kioskID = uint(v)
		}
		taxRate := 0.0825
		if v, err := strconv.ParseFloat(os.Getenv("TAX_RATE"), 64); err == nil && v >= 0 {
			taxRate = v
		}
		AppConfig = &Config{
			AppName:         os.Getenv("APP_NAME"),
			Port:            os.Getenv("PORT"),
			Env:             os.Getenv("APP_ENV"),
			Debug:           os.Getenv("DEBUG") == "true",
			KioskEmployeeID: kioskID,
			TaxRate:         taxRate,
			MediaDir:        GetEnv("MEDIA_DIR", "media/menu"),
		}
	})
}
