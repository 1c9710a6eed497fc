package email

import "strings"

// Инлайн-шаблоны писем; {{code}} заменяется на одноразовый код.

const verificationTemplate = `
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
      <h2 style="text-align: center;">Welcome!</h2>
      <p>Thank you for registering. Please use the following verification code to verify your account:</p>
      <div style="background-color: #f5f5f5; padding: 15px; text-align: center; border-radius: 5px; margin: 20px 0;">
        <h1 style="margin: 0; letter-spacing: 5px; color: #333;">{{code}}</h1>
      </div>
      <p>If you did not create an account, please ignore this email.</p>
    </div>
  </body>
</html>`

const passwordResetTemplate = `
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
      <h2 style="text-align: center;">Password Reset Request</h2>
      <p>We received a request to reset your password. Use the following OTP to proceed:</p>
      <div style="background-color: #f5f5f5; padding: 15px; text-align: center; border-radius: 5px; margin: 20px 0;">
        <h1 style="margin: 0; letter-spacing: 5px; color: #333;">{{code}}</h1>
      </div>
      <p>If you did not request a password reset, please ignore this email.</p>
    </div>
  </body>
</html>`

func renderCodeEmail(template, code string) string {
	return strings.ReplaceAll(template, "{{code}}", code)
}
