package mailer

const welcomeBody = `
<div style='font-family:sans-serif;max-width:600px;margin:auto;'>
    <h2 style='color:#2d7ff9;'>Welcome to DraftCraft!</h2>
    <p>Thank you for joining <b>DraftCraft</b>, your AI-powered freelance proposal generator.</p>
    <p>With the <b>Free Tier</b>, you can generate up to 5 professional proposals per month using our advanced AI. Simply log in, fill out the proposal form, and let DraftCraft do the rest!</p>
    <p>Want unlimited proposals, priority support, and access to the latest AI models? <a href='{{.PricingURL}}' style='color:#2d7ff9;text-decoration:underline;'>Explore Premium Features</a> and upgrade anytime from your dashboard.</p>
    <hr style='margin:2em 0;'>
    <p style='font-size:12px;color:#888;'>If you have any questions, reply to this email or contact support@draftcraftagent.com</p>
</div>
`

const verifyBody = `
<div style='font-family:sans-serif;max-width:600px;margin:auto;'>
    <h2 style='color:#2d7ff9;'>Verify your email</h2>
    <p>Hello,</p>
    <p>Click the button below to verify your DraftCraft account:</p>
    <p style='text-align:center;margin:2em 0;'>
        <a href='{{.VerifyURL}}' style='background:#2d7ff9;color:#fff;padding:12px 28px;border-radius:5px;text-decoration:none;font-weight:bold;'>Verify Email</a>
    </p>
    <p>If you did not create this account, you can safely ignore this email.</p>
</div>
`

const resetBody = `
<div style='font-family:sans-serif;max-width:600px;margin:auto;'>
    <h2 style='color:#2d7ff9;'>DraftCraft Password Reset</h2>
    <p>Hello,</p>
    <p>We received a request to reset your DraftCraft password. Click the button below to securely reset your password:</p>
    <p style='text-align:center;margin:2em 0;'>
        <a href='{{.ResetURL}}' style='background:#2d7ff9;color:#fff;padding:12px 28px;border-radius:5px;text-decoration:none;font-weight:bold;'>Reset Password</a>
    </p>
    <p>If you did not request this, you can safely ignore this email.</p>
    <hr style='margin:2em 0;'>
    <p style='font-size:12px;color:#888;'>This link will expire in 1 hour for your security.</p>
    <p style='font-size:12px;color:#888;'>If you have any questions, contact support@draftcraftagent.com</p>
</div>
`
