package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"wizapp/internal/config"

	"go.uber.org/zap"
)

// StatusMessage ответ на GET /.
const StatusMessage = "Wiz Technical Exercise Web App is running! Try /items to see data."

// StatusHandler отдаёт строку статуса и файл проверки, поставляемый вместе с процессом.
type StatusHandler struct {
	Logger   *zap.SugaredLogger
	FilePath string

	// exeDir каталог бинарника; относительный FilePath ищется там, если его нет в рабочем каталоге
	exeDir func() (string, error)
}

func NewStatusHandler(logger *zap.SugaredLogger, cfg *config.Config) *StatusHandler {
	return &StatusHandler{Logger: logger, FilePath: cfg.ExerciseFile, exeDir: executableDir}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(StatusMessage))
}

// resolvePath возвращает существующий путь к файлу или "", если файла нет.
func (h *StatusHandler) resolvePath() string {
	if isFile(h.FilePath) {
		return h.FilePath
	}
	if filepath.IsAbs(h.FilePath) || h.exeDir == nil {
		return ""
	}
	dir, err := h.exeDir()
	if err != nil {
		return ""
	}
	if p := filepath.Join(dir, h.FilePath); isFile(p) {
		return p
	}
	return ""
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// ExerciseFile отдаёт wizexercise.txt, при отсутствии файла 404.
func (h *StatusHandler) ExerciseFile(w http.ResponseWriter, r *http.Request) {
	path := h.resolvePath()
	if path == "" {
		h.Logger.Warnw("ExerciseFile: file unavailable", "path", h.FilePath)
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
