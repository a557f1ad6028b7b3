package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ClassroomServiceURL    string
	StudentServiceURL      string
	DidacticUnitServiceURL string
	CompetenceServiceURL   string
	CapacityServiceURL     string
	StudyProgramServiceURL string
	EmailServiceURL        string

	// Per-call deadline for every outbound service call.
	HTTPClientTimeout time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	ClassroomServiceURL = GetEnv("CLASSROOM_SERVICE_URL")
	StudentServiceURL = GetEnv("STUDENT_SERVICE_URL")
	DidacticUnitServiceURL = GetEnv("DIDACTIC_UNIT_SERVICE_URL")
	CompetenceServiceURL = GetEnv("COMPETENCE_SERVICE_URL")
	CapacityServiceURL = GetEnv("CAPACITY_SERVICE_URL")
	StudyProgramServiceURL = GetEnv("STUDY_PROGRAM_SERVICE_URL")
	EmailServiceURL = GetEnv("EMAIL_SERVICE_URL")

	HTTPClientTimeout = time.Duration(GetEnvInt("HTTP_CLIENT_TIMEOUT", 5)) * time.Second

	for _, check := range []struct {
		key, val string
	}{
		{"CLASSROOM_SERVICE_URL", ClassroomServiceURL},
		{"STUDENT_SERVICE_URL", StudentServiceURL},
		{"DIDACTIC_UNIT_SERVICE_URL", DidacticUnitServiceURL},
		{"COMPETENCE_SERVICE_URL", CompetenceServiceURL},
		{"CAPACITY_SERVICE_URL", CapacityServiceURL},
		{"STUDY_PROGRAM_SERVICE_URL", StudyProgramServiceURL},
		{"EMAIL_SERVICE_URL", EmailServiceURL},
	} {
		if check.val == "" {
			log.Printf("❌ %s is not set!", check.key)
		} else {
			log.Printf("✅ %s loaded.", check.key)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ %s is not a number (%q), using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
