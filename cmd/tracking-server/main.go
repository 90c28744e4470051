package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/tracking-server/internal/config"
	"github.com/darkkaiser/tracking-server/internal/pkg/version"
	"github.com/darkkaiser/tracking-server/internal/service"
	"github.com/darkkaiser/tracking-server/internal/service/api"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/darkkaiser/tracking-server/internal/service/monitor"
	"github.com/darkkaiser/tracking-server/internal/service/tracking"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/storage"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Tracking Server API
// @version 1.0.0
// @description 국가 코드 접두어와 인스턴스 식별자, 시퀀스 번호로 구성된 송장번호를 발급하고
// @description 발급된 송장 레코드를 조회하는 서버의 REST API입니다.
// @description
// @description ## 송장번호 형식
// @description {접두어(최대 6자)}{instance_id}{시퀀스(padding 자리까지 0 채움)}
// @description - /next-tracking-number: 기본 접두어 사용 (예: MY010001)
// @description - /create: 출발 국가 + 도착 국가 코드 사용 (예: MYSG010002)
// @description
// @description 시퀀스는 서버 인스턴스 안에서 한 번만 발급되며, 설정된 범위를 모두 소진하면 이후 발급 요청은 실패합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
  _____                  _     _                ____
 |_   _| _ __  __ _  ___| | __(_) _ __    __ _ / ___|   ___  _ __ __   __  ___  _ __
   | |  | '__|/ _' |/ __| |/ /| || '_ \  / _' |\___ \  / _ \| '__|\ \ / / / _ \| '__|
   | |  | |  | (_| | (__|   < | || | | || (_| | ___) ||  __/| |    \ V / |  __/| |
   |_|  |_|   \__,_|\___|_|\_\|_||_| |_| \__, ||____/  \___||_|     \_/   \___||_|
                                         |___/                           %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

// application 서버 구동에 필요한 구성 요소를 묶습니다.
type application struct {
	store    contract.RecordStore
	services []service.Service
}

func main() {
	configFile := flag.String("config", "", "설정 파일 경로 (생략하면 "+config.DefaultFilename+"을 읽고, 없으면 기본값을 사용)")
	flag.Parse()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(*configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := setupLogging(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApplication(serviceStopCtx, appConfig, buildInfo, prometheus.NewRegistry())
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서버 구성 실패")

		appLogCloser.Close()
		os.Exit(1)
	}

	// 서비스를 시작한다.
	serviceStopWG := &sync.WaitGroup{}
	for _, s := range app.services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()
			app.close()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()

	app.close()
}

// loadConfig 경로가 주어지면 해당 파일을, 아니면 기본 설정 파일을 읽습니다.
func loadConfig(configFile string) (*config.AppConfig, error) {
	if configFile == "" {
		return config.Load()
	}
	return config.LoadWithFile(configFile)
}

func setupLogging(appConfig *config.AppConfig) (io.Closer, error) {
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	return applog.Setup(logOpts)
}

// newApplication 설정에 따라 저장소, 할당기, 지표, 서비스를 생성하고 연결합니다.
//
// 반환된 서비스들은 아직 시작되지 않은 상태입니다. 실패하면 이미 연 저장소를 닫습니다.
func newApplication(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info, reg *prometheus.Registry) (*application, error) {
	allocator, err := idgen.NewAllocator(appConfig.Tracking.Range())
	if err != nil {
		return nil, err
	}

	store, err := storage.New(ctx, storage.Options{
		Driver: appConfig.Store.Driver,
		DSN:    appConfig.Store.DSN,
		Dir:    appConfig.Store.Dir,
	})
	if err != nil {
		return nil, err
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := tracking.NewMetrics(reg, allocator)

	trackingService := tracking.NewService(allocator, store, metrics, appConfig.Tracking.DefaultPrefix)

	if appConfig.Store.SeedSampleData {
		n, err := trackingService.SeedSampleData(ctx)
		if err != nil {
			store.Close()
			return nil, err
		}

		applog.WithComponentAndFields("main", applog.Fields{
			"count": n,
		}).Info("샘플 송장 레코드 등록 완료")
	}

	app := &application{store: store}

	if appConfig.Monitor.Enabled {
		app.services = append(app.services, monitor.NewService(monitor.Options{
			TimeSpec:         appConfig.Monitor.TimeSpec,
			WarningThreshold: appConfig.Monitor.WarningThreshold,
		}, allocator))
	}
	app.services = append(app.services, api.NewService(appConfig, trackingService, reg, buildInfo))

	return app, nil
}

// close 모든 서비스가 종료된 뒤 저장소를 닫습니다.
func (a *application) close() {
	if err := a.store.Close(); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("저장소 종료 중 오류 발생")
	}
}
