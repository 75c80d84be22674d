package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/controller/terminal"
	"github.com/m-mizutani/osintkit/pkg/controller/view"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

const phonePrompt = "Enter phone number (with country code, e.g. +14155552671): "

// errReportFailed makes the process exit non-zero after a rejected subject
// or a failed primary provider. The message has already been rendered.
var errReportFailed = goerr.New("report failed")

func runRepositoryReport(ctx context.Context, uc interfaces.RepositoryReportUseCase, r *terminal.Renderer, raw string) error {
	subject, err := model.ParseRepositorySubject(raw)
	if err != nil {
		ctxlog.From(ctx).Debug("Rejected repository subject", "error", err)
		if err := r.Render(types.DomainRepository, nil, view.InvalidInput(err)); err != nil {
			return err
		}
		return goerr.Wrap(errReportFailed, "malformed repository", goerr.V("raw", raw))
	}

	report := uc.BuildReport(ctx, subject)
	if err := r.Render(types.DomainRepository, report, ""); err != nil {
		return err
	}
	if report.Failed() {
		return goerr.Wrap(errReportFailed, report.Error, goerr.V("subject", subject.String()))
	}
	return nil
}

func runPhoneReport(ctx context.Context, uc interfaces.PhoneReportUseCase, r *terminal.Renderer, raw, region string) error {
	subject, err := model.ParsePhoneSubject(raw, region)
	if err != nil {
		ctxlog.From(ctx).Debug("Rejected phone subject", "error", err)
		if err := r.Render(types.DomainPhone, nil, view.InvalidInput(err)); err != nil {
			return err
		}
		return goerr.Wrap(errReportFailed, "malformed phone number")
	}

	report := uc.BuildReport(ctx, subject)
	if err := r.Render(types.DomainPhone, report, ""); err != nil {
		return err
	}
	if report.Failed() {
		return goerr.Wrap(errReportFailed, report.Error)
	}
	return nil
}

// promptPhone asks for a number on in when none was given as an argument
func promptPhone(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, phonePrompt); err != nil {
		return "", goerr.Wrap(err, "failed to write prompt")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", goerr.Wrap(err, "failed to read phone number")
	}
	return strings.TrimSpace(line), nil
}
