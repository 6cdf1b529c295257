package main

import (
	"log"

	"filmorate/internal/config"
	"filmorate/internal/server"
)

func main() {
	log.Println("Filmorate Server Starting...")

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	log.Printf("Конфигурация загружена успешно, окружение: %s", cfg.AppEnv)

	// Собираем и запускаем сервер. Хранилище in-memory: состояние живёт
	// только в течение жизни процесса.
	srv := server.NewServer(cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Ошибка сервера: %v", err)
	}
}
