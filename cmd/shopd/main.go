package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"shopcart-go/cart"
	"shopcart-go/checkout"
	"shopcart-go/config"
	"shopcart-go/feed"
	"shopcart-go/infrastructure/logger"
	"shopcart-go/metrics"
	"shopcart-go/subscription"
	"shopcart-go/userapi"

	"github.com/coreos/go-systemd/v22/daemon"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	listenAddr := flag.String("listenAddr", "", "HTTP 监听地址，覆盖配置文件")
	metricsAddr := flag.String("metricsAddr", "", "Prometheus metrics 监听地址，覆盖配置文件")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}
	if *metricsAddr != "" {
		cfg.Server.MetricsAddr = *metricsAddr
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}

	logCfg := logger.DefaultConfig()
	if cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	zlog, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Close()

	if cfg.Server.MetricsAddr != "" {
		metrics.StartMetricsServer(cfg.Server.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pub := feed.NewPublisher()
	wsServer := feed.NewServer()
	wsServer.Broadcasts = metrics.FeedBroadcasts
	go wsServer.Run(ctx, pub)
	defer wsServer.Close()

	api := &apiServer{
		log:    zlog,
		ledger: &cart.Ledger{},
		pub:    pub,
		checkout: &checkout.Service{
			Users: &userapi.Client{
				BaseURL:    cfg.UserAPI.BaseURL,
				APIKey:     cfg.UserAPI.APIKey,
				HTTPClient: userapi.NewDefaultHTTPClient(),
			},
			Subs: subscription.Service{Clock: subscription.SystemClock},
			Log:  zlog,
			Metrics: checkout.Metrics{
				Quotes:   metrics.Quotes,
				Failures: metrics.QuoteFailures,
				Latency:  metrics.QuoteLatency,
			},
		},
		discountPct: cfg.Checkout.MemberDiscountPct,
		catalog:     cfg.Catalog,
	}
	api.checkout.Ledger = api.ledger

	// 目录/折扣支持热更新
	go func() {
		w := config.Watcher{Path: *cfgPath}
		err := w.Start(ctx, func(next config.AppConfig) {
			if err := config.ValidateParams(next); err != nil {
				zlog.LogError(err, map[string]interface{}{"path": *cfgPath})
				return
			}
			api.applyConfig(next)
			zlog.Info("config reloaded")
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			zlog.LogError(err, nil)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /cart/items", api.handleAddItem)
	mux.HandleFunc("DELETE /cart/items/{name}", api.handleRemoveItem)
	mux.HandleFunc("POST /cart/clear", api.handleClear)
	mux.HandleFunc("GET /cart", api.handleGetCart)
	mux.HandleFunc("GET /quote", api.handleQuote)
	mux.Handle("GET /ws", wsServer)

	srv := &http.Server{Addr: cfg.Server.ListenAddr, Handler: mux}
	go func() {
		zlog.Info("listening on " + cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// apiServer 串行化账本访问；Ledger 本身不做并发保护。
type apiServer struct {
	log      *logger.Logger
	checkout *checkout.Service
	pub      *feed.Publisher

	mu          sync.Mutex
	ledger      *cart.Ledger
	discountPct float64
	catalog     map[string]config.ProductConfig
}

func (a *apiServer) applyConfig(cfg config.AppConfig) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.discountPct = cfg.Checkout.MemberDiscountPct
	a.catalog = cfg.Catalog
}

type addItemRequest struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

func (a *apiServer) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	a.mu.Lock()
	if req.UnitPrice == 0 {
		if p, ok := a.catalog[req.Name]; ok {
			req.UnitPrice = p.UnitPrice
		}
	}
	a.ledger.AddN(req.Name, req.UnitPrice, req.Quantity)
	snap := a.snapshotLocked()
	a.mu.Unlock()

	metrics.IncrementItemAdded(req.Name)
	a.log.LogCart("add", map[string]interface{}{
		"name":      req.Name,
		"total":     snap.Total,
		"itemCount": snap.ItemCount,
	})
	a.respond(w, r, http.StatusOK, snap)
}

func (a *apiServer) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	a.mu.Lock()
	a.ledger.Remove(name)
	snap := a.snapshotLocked()
	a.mu.Unlock()

	metrics.ItemsRemoved.Inc()
	a.log.LogCart("remove", map[string]interface{}{
		"name":      name,
		"total":     snap.Total,
		"itemCount": snap.ItemCount,
	})
	a.respond(w, r, http.StatusOK, snap)
}

func (a *apiServer) handleClear(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.ledger.Clear()
	snap := a.snapshotLocked()
	a.mu.Unlock()

	metrics.CartClears.Inc()
	a.log.LogCart("clear", map[string]interface{}{
		"name":      "",
		"total":     snap.Total,
		"itemCount": snap.ItemCount,
	})
	a.respond(w, r, http.StatusOK, snap)
}

func (a *apiServer) handleGetCart(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	snap := feed.Capture(a.ledger)
	a.mu.Unlock()
	a.respond(w, r, http.StatusOK, snap)
}

func (a *apiServer) handleQuote(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		a.fail(w, r, http.StatusBadRequest, err)
		return
	}
	expiry := time.Now().AddDate(0, 1, 0)
	if v := r.URL.Query().Get("expiry"); v != "" {
		expiry, err = time.Parse(time.RFC3339, v)
		if err != nil {
			a.fail(w, r, http.StatusBadRequest, err)
			return
		}
	}

	a.mu.Lock()
	a.checkout.DiscountPct = a.discountPct
	q, err := a.checkout.QuoteOrder(userID, expiry)
	a.mu.Unlock()
	if err != nil {
		a.fail(w, r, http.StatusBadGateway, err)
		return
	}
	a.respond(w, r, http.StatusOK, q)
}

// snapshotLocked 生成快照并同步指标与推送，调用方需持锁。
func (a *apiServer) snapshotLocked() feed.Snapshot {
	snap := feed.Capture(a.ledger)
	metrics.UpdateCartMetrics(snap.Total, snap.ItemCount)
	a.pub.Publish(snap)
	return snap
}

func (a *apiServer) respond(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	metrics.IncrementAPIRequest(r.Method, strconv.Itoa(status))
	a.log.LogAPI(r.Method, r.URL.Path, status, nil)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *apiServer) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	metrics.IncrementAPIRequest(r.Method, strconv.Itoa(status))
	a.log.LogError(err, map[string]interface{}{"path": r.URL.Path})
	http.Error(w, err.Error(), status)
}
