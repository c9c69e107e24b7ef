package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"student-assist/internal/auth"
	"student-assist/internal/blob"
	"student-assist/internal/config"
	"student-assist/internal/httpapi"
	"student-assist/internal/logging"
	"student-assist/internal/notify"
	"student-assist/internal/repository"
	"student-assist/internal/service"
)

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	blobs, err := blob.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	studyRepo := repository.NewStudyRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens)
	taskSvc := service.NewTaskService(taskRepo)
	noteSvc := service.NewNoteService(noteRepo, blobs)
	studySvc := service.NewStudyService(studyRepo)
	timetableSvc := service.NewTimetableService(timetableRepo)
	reminderSvc := service.NewReminderService(taskRepo, cfg.ReminderHorizon)

	if cfg.TelegramToken != "" && (cfg.DigestInterval > 0 || cfg.DigestTime != "") {
		telegram, err := notify.NewTelegram(cfg.TelegramToken)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}

		scheduler := service.NewSchedulerService(time.Local)
		job := func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			sendDigests(jobCtx, log, userRepo, reminderSvc, telegram)
		}
		if cfg.DigestTime != "" {
			if _, err := scheduler.ScheduleDaily(cfg.DigestTime, job); err != nil {
				log.Fatalf("schedule daily digest: %v", err)
			}
		} else {
			if _, err := scheduler.ScheduleInterval(cfg.DigestInterval, job); err != nil {
				log.Fatalf("schedule digests: %v", err)
			}
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := httpapi.NewServer(log, tokens, authSvc, taskSvc, noteSvc, studySvc, timetableSvc, reminderSvc)
	log.WithField("addr", cfg.HTTPAddr).Info("student assist started")
	if err := server.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}

// sendDigests walks users with a linked chat and pushes their upcoming
// reminders. A failure for one user never stops the sweep.
func sendDigests(ctx context.Context, log *logrus.Logger, userRepo *repository.UserRepository, reminders *service.ReminderService, telegram *notify.Telegram) {
	users, err := userRepo.ListWithChat(ctx)
	if err != nil {
		log.WithError(err).Error("digest sweep failed")
		return
	}

	now := time.Now().UTC()
	for _, user := range users {
		digest, err := reminders.Digest(ctx, &user, now)
		if err != nil {
			log.WithError(err).WithField("user_id", user.ID).Error("digest failed")
			continue
		}
		if digest == "" {
			continue
		}
		if err := telegram.Send(*user.TelegramChatID, digest); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Error("digest delivery failed")
		}
	}
}
