package usecase

import (
	"context"
	"fmt"
	stdlog "log"
	"log/slog"

	"CopyForge/internal/domain"
	"CopyForge/internal/plugin"
	"CopyForge/internal/ports"
	"CopyForge/internal/postprocess"
	"CopyForge/internal/prompt"
)

// maxImages caps how many images one request may send for captioning.
const maxImages = 10

const captionPrompt = "이 사진에 담긴 장면을 마케팅 글에 쓸 수 있도록 한 문장으로 구체적으로 설명해 주세요. 설명 문장만 출력하세요."

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Profiles      ports.ProfileStore
	Plugins       *plugin.Registry
	Composer      *prompt.Composer
	Generator     ports.TextGenerator
	PostProcessor *postprocess.Processor
	Research      ports.ResearchSource
	Repository    ports.RecordRepository
	Notifier      ports.Notifier
	Logger        *slog.Logger
	RecordLog     *stdlog.Logger
}

// Pipeline implements the copy-generation workflow: load profiles,
// assemble plugins, fetch research, caption images, compose the prompt,
// call the generation client, post-process, persist. Everything it calls
// is stateless given its inputs, so arbitrarily many requests may run
// concurrently.
type Pipeline struct {
	profiles   ports.ProfileStore
	plugins    *plugin.Registry
	composer   *prompt.Composer
	generator  ports.TextGenerator
	post       *postprocess.Processor
	research   ports.ResearchSource
	repository ports.RecordRepository
	notifier   ports.Notifier
	logger     *slog.Logger
	recordLog  *stdlog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	composer := deps.Composer
	if composer == nil {
		composer = prompt.NewComposer(nil)
	}
	post := deps.PostProcessor
	if post == nil {
		post = postprocess.NewProcessor(postprocess.ProcessorConfig{Logger: deps.Logger})
	}
	return &Pipeline{
		profiles:   deps.Profiles,
		plugins:    deps.Plugins,
		composer:   composer,
		generator:  deps.Generator,
		post:       post,
		research:   deps.Research,
		repository: deps.Repository,
		notifier:   deps.Notifier,
		logger:     deps.Logger,
		recordLog:  deps.RecordLog,
	}
}

// Run executes one generation request end to end. Configuration and
// provider errors are fatal; every other degradation becomes a warning on
// a best-effort result.
func (p *Pipeline) Run(ctx context.Context, req domain.GenerationRequest) (domain.PostProcessResult, error) {
	if p.profiles == nil || p.generator == nil {
		return domain.PostProcessResult{}, fmt.Errorf("pipeline is not fully wired")
	}

	domainProfile, err := p.profiles.LoadDomainProfile(req.DomainID)
	if err != nil {
		return domain.PostProcessResult{}, fmt.Errorf("load domain profile: %w", err)
	}

	platform, err := p.profiles.LoadPlatformTemplate(req.PlatformID)
	if err != nil {
		return domain.PostProcessResult{}, fmt.Errorf("load platform template: %w", err)
	}

	var plugins []plugin.Plugin
	if p.plugins != nil {
		plugins = p.plugins.Get(req.PluginIDs)
	}

	var warnings []string

	research := req.ResearchContext
	if research == "" && req.ResearchQuery != "" && p.research != nil {
		fetched, rErr := p.research.Fetch(ctx, req.ResearchQuery)
		if rErr != nil {
			p.debug("research fetch failed", "query", req.ResearchQuery, "error", rErr)
			warnings = append(warnings, "조사 자료를 불러오지 못해 생략했습니다")
		} else {
			research = fetched
		}
	}

	content := req.Content
	content.ImageCaptions = append(content.ImageCaptions, p.analyzeImages(ctx, req.Images, &warnings)...)

	composed := p.composer.Compose(prompt.Input{
		Domain:        domainProfile,
		Platform:      platform,
		Brand:         req.Brand,
		Plugins:       plugins,
		PluginConfigs: req.PluginConfigs,
		Content:       content,
		Research:      research,
	})

	raw, err := p.generator.Generate(ctx, composed, "")
	if err != nil {
		return domain.PostProcessResult{}, fmt.Errorf("generate content: %w", err)
	}

	result := p.post.Run(ctx, raw, postprocess.Options{
		Domain:    domainProfile,
		Platform:  platform,
		Region:    content.Region,
		Keywords:  content.Keywords,
		MenuNames: content.MenuNames,
		Intent:    content.Intent,
		Link:      content.Link,
	})
	result.Warnings = append(warnings, result.Warnings...)

	for _, pl := range plugins {
		if hook, ok := pl.(plugin.PostProcessor); ok {
			result.Output = hook.PostProcess(result.Output, req.DomainID, req.PlatformID)
		}
	}

	p.persistRecord(ctx, req, composed, result)
	p.notify(ctx, result.Output)

	return result, nil
}

// analyzeImages captions up to maxImages sequentially; a failed image is
// skipped with a warning rather than aborting the request.
func (p *Pipeline) analyzeImages(ctx context.Context, images []string, warnings *[]string) []string {
	if len(images) > maxImages {
		*warnings = append(*warnings, fmt.Sprintf("이미지가 %d장을 넘어 앞의 %d장만 분석했습니다", maxImages, maxImages))
		images = images[:maxImages]
	}

	var captions []string
	for i, image := range images {
		caption, err := p.generator.Generate(ctx, captionPrompt, image)
		if err != nil {
			p.debug("image analysis failed", "index", i, "error", err)
			*warnings = append(*warnings, fmt.Sprintf("이미지 %d 분석에 실패해 건너뛰었습니다", i+1))
			continue
		}
		captions = append(captions, caption)
	}
	return captions
}

// persistRecord is best-effort: a storage failure must never affect the
// response already computed, so it only goes to the side-channel log.
func (p *Pipeline) persistRecord(ctx context.Context, req domain.GenerationRequest, composed string, result domain.PostProcessResult) {
	if p.repository == nil {
		return
	}

	err := p.repository.SaveRecord(ctx, domain.GenerationRecord{
		DomainID:   req.DomainID,
		PlatformID: req.PlatformID,
		Prompt:     composed,
		Output:     result.Output,
		Hashtags:   result.Hashtags,
		Warnings:   result.Warnings,
	})
	if err != nil && p.recordLog != nil {
		p.recordLog.Printf("save generation record: %v", err)
	}
}

func (p *Pipeline) notify(ctx context.Context, output string) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.PublishResult(ctx, output); err != nil {
		p.debug("result notification failed", "error", err)
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
