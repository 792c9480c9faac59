package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/nPaBwaYT/aessim/cripta"
)

/*
Шифрование файла из data/inbox (режим берется из имени записи в data/inbox/todo)
go run .

Явное шифрование с ключом
go run . -e -k=000102030405060708090a0b0c0d0e0f -in=input.txt

Дешифрование с вводом ключа из терминала
go run . -d -prompt -in=data/outbox/enc_input.txt

Параллельная обработка блоков и строгая проверка набивки
go run . -d -parallel -strict -in=data/outbox/enc_input.txt

Самопроверка (векторы FIPS-197)
go run . -selftest

Генерация случайного ключа
go run . -genkey

Разделение ключей из data/inbox/key на 5 долей с порогом 3
go run . -split -threshold=3 -shares=5

Восстановление ключа из долей в data/inbox/shares
go run . -combine -threshold=3
*/

// ErrNoTerminal - ключ запрошен с -prompt, но stdin не терминал
var ErrNoTerminal = errors.New("stdin is not a terminal; cannot read key")

func main() {
	cfg := LoadConfig()

	encryptFlag := flag.Bool("e", false, "Режим шифрования")
	decryptFlag := flag.Bool("d", false, "Режим дешифрования")
	keyFlag := flag.String("k", "", "Ключ в hex (16 или 32 байта; используются первые 16)")
	promptFlag := flag.Bool("prompt", false, "Ввести ключ из терминала без эха")
	inputFlag := flag.String("in", "", "Входной файл (по умолчанию единственный файл в <inbox>/file)")
	flag.StringVar(&cfg.InboxDir, "inbox", cfg.InboxDir, "Каталог inbox")
	flag.StringVar(&cfg.OutboxDir, "out", cfg.OutboxDir, "Каталог для результата")
	flag.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "Параллельная обработка блоков")
	flag.BoolVar(&cfg.StrictPadding, "strict", cfg.StrictPadding, "Отклонять некорректную набивку PKCS#7")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Подробный вывод")
	selfTestFlag := flag.Bool("selftest", false, "Проверить реализацию на векторах FIPS-197 и выйти")
	genKeyFlag := flag.Bool("genkey", false, "Сгенерировать случайный ключ и выйти")
	splitFlag := flag.Bool("split", false, "Разделить 64-hex ключи из <inbox>/key на доли Шамира")
	combineFlag := flag.Bool("combine", false, "Восстановить ключ из долей share_* (каталог -in или <inbox>/shares)")
	thresholdFlag := flag.Int("threshold", 0, "Минимальное число долей для восстановления")
	sharesFlag := flag.Int("shares", 0, "Общее число долей при -split")

	flag.Parse()

	logger := NewLogger("aes", cfg.Verbose)

	if *selfTestFlag {
		if err := cripta.SelfTest(); err != nil {
			log.Fatalf("Ошибка самопроверки: %v", err)
		}
		fmt.Println("Самопроверка AES-128 пройдена")
		return
	}

	if *genKeyFlag {
		key, err := cripta.GenerateKey()
		if err != nil {
			log.Fatalf("Ошибка генерации ключа: %v", err)
		}
		fmt.Println(hex.EncodeToString(key[:]))
		return
	}

	if *splitFlag {
		written, err := SplitKeys(cfg, logger, *thresholdFlag, *sharesFlag)
		if err != nil {
			logger.Error("split failed", err, cfg.InboxDir)
			os.Exit(1)
		}
		fmt.Printf("Записано долей: %d в %s\n", len(written), cfg.OutboxDir)
		return
	}

	if *combineFlag {
		dir := *inputFlag
		if dir == "" {
			dir = filepath.Join(cfg.InboxDir, "shares")
		}
		path, err := CombineShares(cfg, logger, dir, *thresholdFlag)
		if err != nil {
			logger.Error("combine failed", err, dir)
			os.Exit(1)
		}
		fmt.Printf("Ключ восстановлен: %s\n", path)
		return
	}

	if *encryptFlag && *decryptFlag {
		fmt.Println("Использование:")
		fmt.Println("  Шифрование: go run . -e -k=<hex> -in=input.txt")
		fmt.Println("  Дешифрование: go run . -d -k=<hex> -in=data/outbox/enc_input.txt")
		fmt.Println("\nФлаги:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger.Debug("config", cfg.String())

	job, err := resolveJob(cfg, logger, *encryptFlag, *decryptFlag, *keyFlag, *promptFlag, *inputFlag)
	if err != nil {
		log.Fatalf("Ошибка подготовки задания: %v", err)
	}

	fmt.Println("########## AES-128: шифрование данных в покое ##########")
	fmt.Printf("Режим: %s | Файл: %s\n", job.Mode, job.InputPath)

	report, err := NewProcessor(cfg, logger).Process(job)
	if err != nil {
		logger.Error("processing failed, no output written", err, job.InputPath)
		os.Exit(1)
	}

	PrintReport(os.Stdout, report)
}

// resolveJob собирает задание из флагов, дополняя недостающее из inbox
func resolveJob(cfg *Config, logger *Logger, enc, dec bool, keyHex string, prompt bool, input string) (Job, error) {
	var job Job
	var err error

	switch {
	case enc:
		job.Mode = ModeEncrypt
	case dec:
		job.Mode = ModeDecrypt
	default:
		job.Mode, err = InboxMode(cfg.InboxDir)
		if err != nil {
			return job, fmt.Errorf("mode: %w", err)
		}
	}

	job.InputPath = input
	if job.InputPath == "" {
		job.InputPath, err = InboxInputPath(cfg.InboxDir)
		if err != nil {
			return job, fmt.Errorf("input: %w", err)
		}
	}
	if _, err := os.Stat(job.InputPath); err != nil {
		return job, fmt.Errorf("input: %w", err)
	}

	switch {
	case prompt:
		job.KeyHex, err = promptKey()
		if err != nil {
			return job, err
		}
	case keyHex != "":
		job.KeyHex = keyHex
	default:
		var path string
		job.KeyHex, path, err = InboxKeyHex(cfg.InboxDir)
		if err != nil {
			return job, fmt.Errorf("key: %w", err)
		}
		logger.Info("key picked", path, len(job.KeyHex))
	}

	return job, nil
}

// promptKey читает hex-ключ из терминала без отображения
func promptKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Print("Ключ (hex): ")
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}
