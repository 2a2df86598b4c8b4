package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"traffic-info/internal/generator"
	"traffic-info/internal/service"
)

// Scheduler 定时任务调度器
// 目前只有一个任务：按配置的节奏生成并广播流量记录
type Scheduler struct {
	cron      *cron.Cron
	jobMutex  sync.Mutex
	isRunning bool
	jobID     cron.EntryID

	gen     *generator.Generator
	traffic *service.TrafficService
}

// NewScheduler 创建调度器
func NewScheduler(gen *generator.Generator, traffic *service.TrafficService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		gen:     gen,
		traffic: traffic,
	}
}

// Start 按给定的cron表达式启动生成任务
func (s *Scheduler) Start(schedule string) error {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	entryID, err := s.cron.AddFunc(schedule, s.runGenerateJob)
	if err != nil {
		return err
	}
	s.jobID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("scheduler started, generate schedule: %s", schedule)

	return nil
}

// Stop 停止调度器，等待当前任务结束
func (s *Scheduler) Stop() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	if s.isRunning {
		<-s.cron.Stop().Done()
		s.isRunning = false
		log.Println("scheduler stopped")
	}
}

// runGenerateJob 生成一条记录并落库广播
func (s *Scheduler) runGenerateJob() {
	// 添加panic恢复机制，单次失败不能影响后续tick
	defer func() {
		if r := recover(); r != nil {
			log.Printf("generate job panic: %v", r)
		}
	}()

	record := s.gen.Generate(time.Now().UTC())
	if err := s.traffic.Record(record); err != nil {
		log.Printf("generate job failed: %v", err)
	}
}

// GetStatus 获取调度器状态
func (s *Scheduler) GetStatus() map[string]interface{} {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	status := make(map[string]interface{})
	status["is_running"] = s.isRunning

	if s.isRunning {
		entry := s.cron.Entry(s.jobID)
		status["next_run"] = entry.Next.Format(time.RFC3339)
		status["prev_run"] = entry.Prev.Format(time.RFC3339)
	}

	return status
}
