package service

import (
	"crypto/subtle"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/dchest/uniuri"
	"github.com/gotx/contact-service/dao"
	"github.com/gotx/contact-service/mail"
	"github.com/gotx/contact-service/metrics"
	"github.com/gotx/contact-service/model"
	"github.com/gotx/contact-service/service/dto"
	"github.com/gotx/contact-service/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	taskIdPrefix = "GOTX-"
	taskIdLen    = 5
	//extra draws when a generated id already exists in the store
	taskIdAttempts = 3
)

var taskIdChars = []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

type Service interface {
	//SubmitInquiry validates the inquiry, emails it to the operator and the
	//submitter and logs it to the store best effort
	SubmitInquiry(inquiry dto.Inquiry) (dto.SubmitResult, error)
	//VerifyReceipt records the user supplied follow-up status against the
	//original submission and alerts the operator
	VerifyReceipt(verification dto.Verification) (dto.VerifyResult, error)
	//Subscribe signs an email up for the newsletter with a dual notification
	Subscribe(subscription dto.Subscription) (dto.SubscribeResult, error)
	//FetchLogs returns all stored submissions newest first, guarded by the
	//shared access token
	FetchLogs(token string) ([]model.SubmissionRecord, error)
}

type service struct {
	notifier mail.Notifier
	//nil when the store is not bound, persistence is then skipped
	submissionDao dao.SubmissionDao
	adminEmail    string
	fromAddress   string
	logsToken     string
	emailRx       *regexp.Regexp
}

func NewService(notifier mail.Notifier, submissionDao dao.SubmissionDao, adminEmail, fromAddress, logsToken, emailMask string) Service {
	return &service{
		notifier:      notifier,
		submissionDao: submissionDao,
		adminEmail:    adminEmail,
		fromAddress:   fromAddress,
		logsToken:     logsToken,
		emailRx:       regexp.MustCompile(emailMask),
	}
}

func (s *service) SubmitInquiry(inquiry dto.Inquiry) (dto.SubmitResult, error) {

	//overall inquiry validation
	if util.IsBlank(inquiry.Email) || util.IsBlank(inquiry.FullName) || util.IsBlank(inquiry.Description) {
		return dto.SubmitResult{}, NewInvalidPayloadError("Missing required fields")
	}

	//check email format
	if !s.emailRx.MatchString(inquiry.Email) {
		return dto.SubmitResult{}, NewInvalidPayloadError("Invalid email " + inquiry.Email)
	}

	taskId := s.newTaskId()
	fields := model.FormFields(inquiry)

	body, err := mail.RenderInquiry(taskId, fields)
	if err != nil {
		return dto.SubmitResult{}, err
	}

	err = s.notifier.Send(mail.Mail{
		FromAddress: s.fromAddress,
		FromName:    "GOTX Website",
		To: []mail.Recipient{
			{Address: s.adminEmail, Name: "GOTX Info"},
			{Address: inquiry.Email, Name: inquiry.FullName},
		},
		Subject:  fmt.Sprintf("New Inquiry from %s: %s [%s]", inquiry.FullName, inquiry.UserType, taskId),
		HtmlBody: body,
	})
	if err != nil {
		metrics.IncNotification("inquiry", "failure")
		if err == mail.ErrNotConfigured {
			return dto.SubmitResult{}, NewConfigError("Server configuration error")
		}
		return dto.SubmitResult{}, NewNotifyError("Failed to send email")
	}
	metrics.IncNotification("inquiry", "success")

	//the email already went out, a failed log write must not fail the request
	s.logSubmission(taskId, fields)

	metrics.IncSubmission("accepted")

	return dto.SubmitResult{Message: "Mission Received", TaskId: taskId}, nil
}

func (s *service) VerifyReceipt(verification dto.Verification) (dto.VerifyResult, error) {
	now := time.Now().UTC()

	var subject string
	if verification.Status == model.CONFIRMED {
		subject = fmt.Sprintf("[VERIFIED] User Confirmed Receipt (Task %s)", verification.TaskId)
	} else {
		subject = fmt.Sprintf("[IMPORTANT] User Status Update: %s (Task %s)", verification.Status, verification.TaskId)
	}

	body, err := mail.RenderVerification(verification.Email, verification.TaskId, verification.Status, now)
	if err != nil {
		return dto.VerifyResult{}, err
	}

	err = s.notifier.Send(mail.Mail{
		FromAddress: s.fromAddress,
		FromName:    "GOTX Watchdog",
		To:          []mail.Recipient{{Address: s.adminEmail, Name: "GOTX Admin"}},
		Subject:     subject,
		HtmlBody:    body,
	})
	if err == mail.ErrNotConfigured {
		metrics.IncNotification("verification", "failure")
		return dto.VerifyResult{}, NewConfigError("Server configuration error")
	}
	if err != nil {
		//alert failure must not block the status update
		metrics.IncNotification("verification", "failure")
		zap.L().Warn("Error sending verification alert",
			zap.String("taskId", verification.TaskId),
			zap.Error(err))
	} else {
		metrics.IncNotification("verification", "success")
	}

	s.updateSubmission(verification, now)

	return dto.VerifyResult{Success: true}, nil
}

func (s *service) Subscribe(subscription dto.Subscription) (dto.SubscribeResult, error) {
	if util.IsBlank(subscription.Email) {
		return dto.SubscribeResult{}, NewInvalidPayloadError("Missing email address")
	}

	alertBody, err := mail.RenderSubscriberAlert(subscription.Email, time.Now().UTC())
	if err != nil {
		return dto.SubscribeResult{}, err
	}

	var g errgroup.Group

	g.Go(func() error {
		return s.notifier.Send(mail.Mail{
			FromAddress: s.fromAddress,
			FromName:    "GOTX Watchdog",
			To:          []mail.Recipient{{Address: s.adminEmail, Name: "GOTX Admin"}},
			Subject:     "New Media Subscriber: " + subscription.Email,
			HtmlBody:    alertBody,
		})
	})

	g.Go(func() error {
		return s.notifier.Send(mail.Mail{
			FromAddress: s.fromAddress,
			FromName:    "GOTX Managed IT",
			To:          []mail.Recipient{{Address: subscription.Email, Name: "New Subscriber"}},
			Subject:     "You're In: GOTX Media & News",
			HtmlBody:    mail.WelcomeBody(),
		})
	})

	if err := g.Wait(); err != nil {
		metrics.IncNotification("subscription", "failure")
		if err == mail.ErrNotConfigured {
			return dto.SubscribeResult{}, NewConfigError("Server configuration error")
		}
		return dto.SubscribeResult{}, NewNotifyError("Failed to process subscription")
	}
	metrics.IncNotification("subscription", "success")

	return dto.SubscribeResult{Message: "Subscription Successful"}, nil
}

func (s *service) FetchLogs(token string) ([]model.SubmissionRecord, error) {
	//fail closed, there is no default token
	if util.IsBlank(s.logsToken) {
		return nil, NewConfigError("Log access token is not configured")
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(s.logsToken)) != 1 {
		return nil, NewUnauthorizedError("Unauthorized access")
	}

	if s.submissionDao == nil {
		return nil, NewStorageError("Submission store is not bound")
	}

	records, err := s.submissionDao.GetAll()
	if err != nil {
		zap.L().Error("Error listing submission logs", zap.Error(err))
		return nil, NewStorageError("Failed to read submission logs")
	}

	//newest first, records with unparseable timestamps go last
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedTime().After(records[j].CreatedTime())
	})

	return records, nil
}

//newTaskId draws a fresh task id and re-draws a few times if the id is
//already taken. Store errors are ignored, the check is best effort.
func (s *service) newTaskId() string {
	taskId := taskIdPrefix + uniuri.NewLenChars(taskIdLen, taskIdChars)
	if s.submissionDao == nil {
		return taskId
	}

	for i := 1; i < taskIdAttempts; i++ {
		_, found, err := s.submissionDao.GetOneByTaskId(taskId)
		if err != nil || !found {
			break
		}
		taskId = taskIdPrefix + uniuri.NewLenChars(taskIdLen, taskIdChars)
	}

	return taskId
}

func (s *service) logSubmission(taskId string, fields model.FormFields) {
	if s.submissionDao == nil {
		return
	}

	seq, err := s.submissionDao.NextSequence()
	if err != nil {
		zap.L().Warn("Error incrementing submission counter", zap.Error(err))
		return
	}

	record := model.SubmissionRecord{
		LogID:     fmt.Sprintf("Log:%d", seq),
		Sequence:  seq,
		TaskID:    taskId,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    model.SENT,
		Fields:    fields,
	}

	if err := s.submissionDao.Put(record); err != nil {
		zap.L().Warn("Error writing submission log",
			zap.String("taskId", taskId),
			zap.Error(err))
	}
}

func (s *service) updateSubmission(verification dto.Verification, at time.Time) {
	if s.submissionDao == nil {
		return
	}

	record, found, err := s.submissionDao.GetOneByTaskId(verification.TaskId)
	if err != nil {
		zap.L().Warn("Error reading submission log",
			zap.String("taskId", verification.TaskId),
			zap.Error(err))
		return
	}
	if !found {
		//unknown task ids leave no durable trace
		return
	}

	record.Status = verification.Status
	record.VerifiedAt = at.Format(time.RFC3339)

	if err := s.submissionDao.Put(record); err != nil {
		zap.L().Warn("Error updating submission log",
			zap.String("taskId", verification.TaskId),
			zap.Error(err))
		return
	}

	metrics.IncVerification(verification.Status)
}
