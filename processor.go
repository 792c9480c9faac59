package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nPaBwaYT/aessim/cripta"
)

// Job - одна операция над файлом
type Job struct {
	Mode      Mode
	InputPath string
	KeyHex    string
}

// Report - статистика выполнения
type Report struct {
	Mode       Mode
	InputPath  string
	OutputPath string
	InputSize  int
	OutputSize int
	Blocks     int
	Elapsed    time.Duration
}

// Processor выполняет задания в режиме ECB с набивкой PKCS#7
type Processor struct {
	cfg *Config
	log *Logger
}

func NewProcessor(cfg *Config, log *Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

// OutputPath - <outbox>/enc_<имя> или <outbox>/dec_<имя>
func (p *Processor) OutputPath(job Job) string {
	return filepath.Join(p.cfg.OutboxDir, string(job.Mode)+"_"+filepath.Base(job.InputPath))
}

// Process выполняет задание. Выходной файл пишется только после успешного
// преобразования всех блоков.
func (p *Processor) Process(job Job) (*Report, error) {
	start := time.Now()

	if job.Mode != ModeEncrypt && job.Mode != ModeDecrypt {
		return nil, fmt.Errorf("%w: %q", cripta.ErrUnknownMode, job.Mode)
	}

	key, keyLen, err := cripta.DecodeHexKey(job.KeyHex)
	if err != nil {
		return nil, err
	}
	if keyLen == 2*cripta.KeySize {
		p.log.Warn("32-byte key, AES-128 uses the first 16 bytes")
	}

	data, err := os.ReadFile(job.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	policy := cripta.PaddingLenient
	if p.cfg.StrictPadding {
		policy = cripta.PaddingStrict
	}

	ctx, err := cripta.NewCipherContext(cripta.NewAES128Cipher(key), policy, p.cfg.Parallel)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher context: %w", err)
	}
	ctx.OnBlock = func(i int) {
		p.log.Debug("block done", i+1)
	}

	var output []byte
	var blocks int

	switch job.Mode {
	case ModeEncrypt:
		blocks = ctx.NumBlocks(len(data))
		p.log.Info("encrypting", job.InputPath, blocks)
		output, err = ctx.Encrypt(data)
	case ModeDecrypt:
		blocks = len(data) / ctx.GetBlockSize()
		p.log.Info("decrypting", job.InputPath, blocks)
		output, err = ctx.Decrypt(data)
	}
	if err != nil {
		return nil, err
	}

	outPath := p.OutputPath(job)
	if err := os.MkdirAll(p.cfg.OutboxDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create outbox: %w", err)
	}
	if err := os.WriteFile(outPath, output, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	return &Report{
		Mode:       job.Mode,
		InputPath:  job.InputPath,
		OutputPath: outPath,
		InputSize:  len(data),
		OutputSize: len(output),
		Blocks:     blocks,
		Elapsed:    time.Since(start),
	}, nil
}

// PrintReport выводит итоговую статистику
func PrintReport(w io.Writer, r *Report) {
	fmt.Fprintf(w, "\n[ГОТОВО] %s: %s -> %s\n", r.Mode, r.InputPath, r.OutputPath)
	fmt.Fprintf(w, "\nСтатистика:\n")
	fmt.Fprintf(w, "  Блоков: %d\n", r.Blocks)
	fmt.Fprintf(w, "  Размер входного файла: %s\n", cripta.HumanSize(r.InputSize))
	fmt.Fprintf(w, "  Размер выходного файла: %s\n", cripta.HumanSize(r.OutputSize))
	fmt.Fprintf(w, "  Время выполнения: %.3f с\n", r.Elapsed.Seconds())
}
