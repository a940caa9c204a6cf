package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"poet_ai/config"
	"poet_ai/generator"
	"poet_ai/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", config.DefaultPath, "path to config.json")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	topic := flag.String("topic", "", "poem topic (CLI mode)")
	style := flag.String("style", "", "poem style (CLI mode, default from config)")
	lines := flag.Int("lines", 0, "poem line count (CLI mode, default from config)")
	seed := flag.Int64("seed", 0, "fixed random seed for reproducible poems (0 = random)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = seed
	}

	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rng := generator.DefaultRand
	if cfg.Seed != nil {
		rng = generator.NewSeededRand(*cfg.Seed)
		infof("using fixed seed %d", *cfg.Seed)
	}
	poet := generator.NewPoet(rng, llm, log.Default())

	// Web server mode
	if *serve {
		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		srv, err := server.New(poet, cfg, log.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "--topic is required (or use --serve)")
		os.Exit(1)
	}
	req := generator.PoemRequest{
		Topic: *topic,
		Style: *style,
		Lines: *lines,
	}
	if req.Style == "" {
		req.Style = cfg.DefaultStyle
	}
	if req.Lines == 0 {
		req.Lines = cfg.DefaultLines
	}

	ctx := context.Background()
	if llm != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	infof("[cli] composing topic=%q style=%q lines=%d", req.Topic, req.Style, req.Lines)
	poem, err := poet.Generate(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	infof("[cli] done source=%s", poem.Source)
	fmt.Println(poem.Text)
}

func infof(format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Printf("[INFO] "+format, args...)
}

// buildLLM returns nil when no provider is configured: poems then come from
// the templates alone.
func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, nil
	}
	switch cfg.LLM.Provider {
	case "mock":
		return generator.MockLLM{}, nil
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url（例如官方/网关地址）。
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
